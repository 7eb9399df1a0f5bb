package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Patterns returns the source text of each pattern, in the order they were added.
func (r RegexList) Patterns() []string {
	var ret []string
	for _, p := range r.patterns {
		ret = append(ret, p.String())
	}
	return ret
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}

// FilteredSuite wraps a Suite so that tests are only added if the filter accepts them.
// Tests that are left out are reported to the TestLogger as skipped.
type FilteredSuite struct {
	*Suite
	filter     Filter
	testLogger TestLogger
}

// NewFilteredSuite creates a FilteredSuite. A nil filter accepts everything.
func NewFilteredSuite(suite *Suite, filter Filter, testLogger TestLogger) *FilteredSuite {
	if testLogger == nil {
		testLogger = NullTestLogger()
	}
	return &FilteredSuite{Suite: suite, filter: filter, testLogger: testLogger}
}

// AddTest adds a test if the filter accepts it, and returns nil otherwise.
func (f *FilteredSuite) AddTest(name string, action TestFunction) *TestCase {
	id := TestID{Path: []string{name}}
	if f.Suite.name != "" {
		id.Path = []string{f.Suite.name, name}
	}
	if f.filter != nil && !f.filter(id) {
		f.testLogger.TestSkipped(id, "excluded by filter parameters")
		return nil
	}
	return f.Suite.AddTest(name, action)
}

package framework

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultMaxCases is the number of tests a Suite can hold unless SuiteConfig says otherwise.
const DefaultMaxCases = 1024

// SuiteConfig contains optional parameters for NewSuiteWithConfig.
type SuiteConfig struct {
	// Name is added to the front of each test's TestID, if it is not empty.
	Name string
	// Frame provides the setup and teardown hooks. If nil, DefaultFrame is used.
	Frame *Frame
	// Context is the initial value of the context that is passed from test to test.
	Context interface{}
	// MaxCases is the maximum number of tests that can be added. Defaults to DefaultMaxCases.
	MaxCases ldvalue.OptionalInt
}

// Suite is an ordered group of tests that share a Frame.
//
// Suites can be chained with AddSuite. Each suite links to the next one in its chain, so a
// chain can be entered at any suite. Running, summarizing, or reporting on a suite covers
// that suite and every suite after it, but the chain does not own the other suites: Delete
// only affects the suite it is called on.
type Suite struct {
	name         string
	cases        []*TestCase
	maxCases     int
	frame        *Frame
	frameContext interface{}
	failCount    int
	next         *Suite
}

// NewSuite creates an empty suite with no setup or teardown.
func NewSuite() *Suite {
	return NewSuiteWithConfig(SuiteConfig{})
}

// NewSuiteWithFrame creates an empty suite that runs the specified Frame around each test.
// The context value is given to the first test; after that, each test receives whatever
// value was left by the previous one.
func NewSuiteWithFrame(frame *Frame, context interface{}) *Suite {
	return NewSuiteWithConfig(SuiteConfig{Frame: frame, Context: context})
}

// NewSuiteWithConfig creates an empty suite with the specified configuration.
func NewSuiteWithConfig(config SuiteConfig) *Suite {
	maxCases := config.MaxCases.OrElse(DefaultMaxCases)
	if maxCases < 1 {
		panic(misuse("suite capacity must be at least 1, was %d", maxCases))
	}
	frame := config.Frame
	if frame == nil {
		frame = DefaultFrame()
	}
	return &Suite{
		name:         config.Name,
		maxCases:     maxCases,
		frame:        frame,
		frameContext: config.Context,
	}
}

// Name returns the suite's name, which may be empty.
func (s *Suite) Name() string {
	return s.name
}

// Add appends a test to the suite. The suite takes ownership of the test. Adding more
// tests than the suite's capacity is a programming error and causes a panic.
func (s *Suite) Add(tc *TestCase) {
	if tc == nil {
		panic(misuse("cannot add a nil test case"))
	}
	if len(s.cases) >= s.maxCases {
		panic(misuse("cannot add test %q: suite already has the maximum of %d tests", tc.id, s.maxCases))
	}
	if s.name != "" {
		tc.id = TestID{Path: append([]string{s.name}, tc.id.Path...)}
	}
	s.cases = append(s.cases, tc)
}

// AddTest is shorthand for Add(NewTestCase(name, action)).
func (s *Suite) AddTest(name string, action TestFunction) *TestCase {
	tc := NewTestCase(name, action)
	s.Add(tc)
	return tc
}

// AddSuite links another suite after the last suite in this suite's chain. Whatever was
// previously chained after other is detached from it first, so only other itself is added.
func (s *Suite) AddSuite(other *Suite) {
	if other == nil {
		panic(misuse("cannot chain a nil suite"))
	}
	last := s
	for {
		if last == other {
			panic(misuse("suite %q is already in this chain", other.name))
		}
		if last.next == nil {
			break
		}
		last = last.next
	}
	other.next = nil
	last.next = other
}

// Chain returns this suite followed by every suite linked after it, in run order.
func (s *Suite) Chain() []*Suite {
	var ret []*Suite
	for suite := s; suite != nil; suite = suite.next {
		ret = append(ret, suite)
	}
	return ret
}

// Cases returns the suite's own tests, not including chained suites.
func (s *Suite) Cases() []*TestCase {
	return append([]*TestCase(nil), s.cases...)
}

// Count returns the number of tests in this suite, not including chained suites.
func (s *Suite) Count() int {
	return len(s.cases)
}

// FailCount returns the number of failed tests in this suite from the last run, not
// including chained suites.
func (s *Suite) FailCount() int {
	return s.failCount
}

// TotalFailCount returns the number of failed tests across the whole chain.
func (s *Suite) TotalFailCount() int {
	total := 0
	for _, suite := range s.Chain() {
		total += suite.failCount
	}
	return total
}

// Run runs every test in every suite of the chain, one at a time, in the order they were
// added.
//
// A test that has failed stays failed, so running a suite again reports the same failures.
// The tests themselves are run again with their setup and teardown.
func (s *Suite) Run() {
	s.RunWithLogger(nil)
}

// RunWithLogger is like Run, but reports the progress of each test to a TestLogger.
func (s *Suite) RunWithLogger(testLogger TestLogger) {
	if testLogger == nil {
		testLogger = NullTestLogger()
	}
	for _, suite := range s.Chain() {
		suite.runCases(testLogger)
	}
}

func (s *Suite) runCases(testLogger TestLogger) {
	s.failCount = 0
	for _, tc := range s.cases {
		tc.testLogger = testLogger
		testLogger.TestStarted(tc.id)

		tc.context = s.frameContext
		failuresBefore := tc.failureCount
		s.frame.Setup(tc)
		if tc.failureCount == failuresBefore {
			tc.Run()
			s.frame.Teardown(tc)
		}
		s.frameContext = tc.context

		if tc.failed {
			s.failCount++
		}
		testLogger.TestFinished(tc.id, tc.failed, tc.debugLogger.Output())
	}
}

// Delete releases all of the suite's tests. Chained suites are not affected.
func (s *Suite) Delete() {
	for _, tc := range s.cases {
		tc.release()
	}
	s.cases = nil
	s.failCount = 0
}

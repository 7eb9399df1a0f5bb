package selftests

import (
	"github.com/launchdarkly/unit-test-harness/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Config contains the parameters for building the self-test suites.
type Config struct {
	Filter     framework.Filter
	TestLogger framework.TestLogger
	MaxCases   ldvalue.OptionalInt
}

type suiteBuilder func(*framework.FilteredSuite)

var allSuites = []struct {
	name  string
	build suiteBuilder
}{
	{"buffer", DoBufferTests},
	{"test case", DoTestCaseTests},
	{"assertions", DoAssertionTests},
	{"frame", DoFrameTests},
	{"chain", DoChainTests},
	{"report", DoReportTests},
}

// AllSuites builds every self-test suite and chains them onto an empty head suite, which
// is returned. Nothing is run yet.
func AllSuites(config Config) *framework.Suite {
	head := framework.NewSuite()
	for _, entry := range allSuites {
		s := framework.NewFilteredSuite(
			framework.NewSuiteWithConfig(framework.SuiteConfig{Name: entry.name, MaxCases: config.MaxCases}),
			config.Filter,
			config.TestLogger,
		)
		entry.build(s)
		head.AddSuite(s.Suite)
	}
	return head
}

// RunTestSuite builds and runs all of the self-test suites.
func RunTestSuite(config Config) *framework.Suite {
	head := AllSuites(config)
	head.RunWithLogger(config.TestLogger)
	return head
}

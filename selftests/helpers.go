package selftests

import (
	"regexp"

	"github.com/launchdarkly/unit-test-harness/framework"
)

var locationPrefix = regexp.MustCompile(`(?m)^[^\s:]+\.go:\d+: `)

// failureText returns the failure message of a test without the "file:line: " prefixes.
func failureText(tc *framework.TestCase) string {
	return locationPrefix.ReplaceAllString(tc.Message(), "")
}

func runInner(action framework.TestFunction) *framework.TestCase {
	tc := framework.NewTestCase("inner", action)
	tc.Run()
	return tc
}

func report(s *framework.Suite) (string, string) {
	summary, details := framework.NewBuffer(), framework.NewBuffer()
	framework.Summary(s, summary)
	framework.Details(s, details)
	return summary.String(), details.String()
}

func passing(*framework.TestCase) {}

func failing(tc *framework.TestCase) {
	tc.AssertIntEquals(2, 3)
}

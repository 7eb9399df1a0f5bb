package selftests

import (
	"regexp"

	"github.com/launchdarkly/unit-test-harness/framework"

	"github.com/stretchr/testify/assert"
)

func DoReportTests(s *framework.FilteredSuite) {
	s.AddTest("empty chain", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		inner.Run()
		summary, details := report(inner)
		t.AssertStrEquals("\n\n", summary)
		t.AssertStrEquals("OK (0 tests)\n", details)
	})

	s.AddTest("single pass", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		inner.AddTest("pass", passing)
		inner.Run()
		summary, details := report(inner)
		t.AssertStrEquals(".\n\n", summary)
		t.AssertStrEquals("OK (1 test)\n", details)
	})

	s.AddTest("multiple passes", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		inner.AddTest("pass 1", passing)
		inner.AddTest("pass 2", passing)
		inner.Run()
		_, details := report(inner)
		t.AssertStrEquals("OK (2 tests)\n", details)
	})

	s.AddTest("single fail", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		inner.AddTest("pass 1", passing)
		inner.AddTest("fail", failing)
		inner.AddTest("pass 2", passing)
		inner.Run()
		summary, details := report(inner)
		t.AssertStrEquals(".F.\n\n", summary)
		assert.Regexp(t, "^"+regexp.QuoteMeta("There was 1 failure:\n1) fail: ")+
			`helpers\.go:\d+: `+
			regexp.QuoteMeta("expected <2> but was <3>\n\n!!!FAILURES!!!\nRuns: 3 Passes: 2 Fails: 1\n")+"$",
			details)
	})

	s.AddTest("multiple fails", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		inner.AddTest("fail 1", func(tc *framework.TestCase) { tc.FailAt(framework.Location{File: "x.go", Line: 1}, "", "a") })
		inner.AddTest("fail 2", func(tc *framework.TestCase) { tc.FailAt(framework.Location{File: "x.go", Line: 2}, "", "b") })
		inner.Run()
		summary, details := report(inner)
		t.AssertStrEquals("FF\n\n", summary)
		t.AssertStrEquals("There were 2 failures:\n"+
			"1) fail 1: x.go:1: a\n"+
			"2) fail 2: x.go:2: b\n"+
			"\n!!!FAILURES!!!\n"+
			"Runs: 2 Passes: 0 Fails: 2\n", details)
	})

	s.AddTest("chained summary", func(t *framework.TestCase) {
		a, b := framework.NewSuite(), framework.NewSuite()
		a.AddTest("a1", passing)
		a.AddTest("a2", failing)
		b.AddTest("b1", failing)
		b.AddTest("b2", passing)
		b.AddTest("b3", passing)
		a.AddSuite(b)
		a.Run()
		summary, details := report(a)
		t.AssertStrEquals(".FF..\n\n", summary)
		assert.Contains(t, details, "There were 2 failures:\n1) a2: ")
		assert.Contains(t, details, "\n2) b1: ")
		assert.Contains(t, details, "Runs: 5 Passes: 3 Fails: 2\n")
	})

	s.AddTest("collected results", func(t *framework.TestCase) {
		inner := namedSuite("inner")
		inner.AddTest("pass", passing)
		inner.AddTest("fail", failing)
		inner.Run()
		results := framework.CollectResults(inner)
		t.Assert("results should not be OK", !results.OK())
		t.AssertIntEquals(2, len(results.Tests))
		t.AssertIntEquals(1, len(results.Failures))
		t.AssertStrEquals("inner/fail", results.Failures[0].TestID.String())
	})
}

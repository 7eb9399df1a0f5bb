package framework

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderReport(s *Suite) (string, string) {
	summary, details := NewBuffer(), NewBuffer()
	Summary(s, summary)
	Details(s, details)
	return summary.String(), details.String()
}

func TestReportForEmptySuite(t *testing.T) {
	s := NewSuite()
	s.Run()
	summary, details := renderReport(s)
	assert.Equal(t, "\n\n", summary)
	assert.Equal(t, "OK (0 tests)\n", details)
}

func TestReportForOnePassingTest(t *testing.T) {
	s := NewSuite()
	s.AddTest("only", passingTest)
	s.Run()
	summary, details := renderReport(s)
	assert.Equal(t, ".\n\n", summary)
	assert.Equal(t, "OK (1 test)\n", details)
}

func TestReportForSeveralPassingTests(t *testing.T) {
	s := NewSuite()
	s.AddTest("a", passingTest)
	s.AddTest("b", passingTest)
	s.Run()
	_, details := renderReport(s)
	assert.Equal(t, "OK (2 tests)\n", details)
}

func TestReportForOneFailure(t *testing.T) {
	s := NewSuite()
	s.AddTest("first", passingTest)
	s.AddTest("second", failingTest)
	s.AddTest("third", passingTest)
	s.Run()
	summary, details := renderReport(s)
	assert.Equal(t, ".F.\n\n", summary)
	assert.Regexp(t,
		`^There was 1 failure:\n1\) second: suite_test\.go:\d+: expected <2> but was <3>\n\n!!!FAILURES!!!\nRuns: 3 Passes: 2 Fails: 1\n$`,
		details)
}

func TestReportForSeveralFailures(t *testing.T) {
	s := NewSuite()
	s.AddTest("a", failingTest)
	s.AddTest("b", passingTest)
	s.AddTest("c", func(tc *TestCase) {
		tc.Errorf("one")
		tc.Errorf("two")
	})
	s.Run()
	summary, details := renderReport(s)
	assert.Equal(t, "F.F\n\n", summary)

	assert.True(t, strings.HasPrefix(details, "There were 2 failures:\n1) a: "), details)
	assert.Contains(t, details, "\n2) c: ")
	assert.True(t, strings.HasSuffix(details, "\n\n!!!FAILURES!!!\nRuns: 3 Passes: 1 Fails: 2\n"), details)
}

func TestSummaryFollowsChainOrder(t *testing.T) {
	a := NewSuite()
	a.AddTest("a1", failingTest)
	a.AddTest("a2", passingTest)
	b := NewSuite()
	b.AddTest("b1", passingTest)
	b.AddTest("b2", failingTest)
	a.AddSuite(b)
	a.Run()
	summary, details := renderReport(a)
	assert.Equal(t, "F..F\n\n", summary)
	assert.Contains(t, details, "1) a1: ")
	assert.Contains(t, details, "2) b2: ")
	assert.Contains(t, details, "Runs: 4 Passes: 2 Fails: 2\n")
}

func TestReportAppendsToExistingContent(t *testing.T) {
	s := NewSuite()
	s.AddTest("a", passingTest)
	s.Run()
	out := NewBuffer()
	out.Append("header\n")
	Summary(s, out)
	Details(s, out)
	assert.Equal(t, "header\n.\n\nOK (1 test)\n", out.String())
}

func TestReportForTestsThatHaveNotRun(t *testing.T) {
	s := NewSuite()
	s.AddTest("a", failingTest)
	summary, details := renderReport(s)
	assert.Equal(t, ".\n\n", summary)
	assert.Equal(t, "OK (1 test)\n", details)
}

func TestReportWithLongFailureMessages(t *testing.T) {
	s := NewSuite()
	long := strings.Repeat("x", MaxFormattedLength)
	for i := 0; i < 3; i++ {
		s.AddTest(fmt.Sprintf("t%d", i), func(tc *TestCase) { tc.Fail(long) })
	}
	s.Run()
	_, details := renderReport(s)
	assert.Equal(t, 3, strings.Count(details, long))
}

func TestReportWithLongTestName(t *testing.T) {
	s := NewSuite()
	name := strings.Repeat("n", MaxFormattedLength+1)
	s.AddTest(name, func(tc *TestCase) { tc.FailAt(Location{File: "x.go", Line: 1}, "", "bad") })
	s.Run()
	_, details := renderReport(s)
	assert.Contains(t, details, "1) "+name+": x.go:1: bad\n")
}

func TestCollectResults(t *testing.T) {
	a := NewSuiteWithConfig(SuiteConfig{Name: "a"})
	a.AddTest("ok", passingTest)
	b := NewSuiteWithConfig(SuiteConfig{Name: "b"})
	b.AddTest("bad", failingTest)
	a.AddSuite(b)
	a.Run()

	results := CollectResults(a)
	assert.False(t, results.OK())
	require.Len(t, results.Tests, 2)
	assert.Equal(t, "a/ok", results.Tests[0].TestID.String())
	assert.Equal(t, Passed, results.Tests[0].Status)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "b/bad", results.Failures[0].TestID.String())
	assert.Equal(t, "expected <2> but was <3>", stripLocations(results.Failures[0].Message))
}

func TestCollectResultsForPassingRun(t *testing.T) {
	s := NewSuite()
	s.AddTest("ok", passingTest)
	s.Run()
	assert.True(t, CollectResults(s).OK())
}

package framework

import (
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Status  Status
	Message string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// CollectResults returns the outcome of every test in the suite's chain, in run order.
func CollectResults(s *Suite) Results {
	var results Results
	for _, suite := range s.Chain() {
		for _, tc := range suite.cases {
			result := TestResult{TestID: tc.id, Status: tc.Status(), Message: tc.Message()}
			results.Tests = append(results.Tests, result)
			if tc.failed {
				results.Failures = append(results.Failures, result)
			}
		}
	}
	return results
}

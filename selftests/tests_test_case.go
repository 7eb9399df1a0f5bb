package selftests

import (
	"github.com/launchdarkly/unit-test-harness/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoTestCaseTests(s *framework.FilteredSuite) {
	s.AddTest("new test case", func(t *framework.TestCase) {
		tc := framework.NewTestCase("MyTest", passing)
		t.AssertStrEquals("MyTest", tc.Name())
		t.Assert("should not have run", tc.Status() == framework.NotRun)
		t.AssertStrEquals("", tc.Message())
	})

	s.AddTest("passing test", func(t *framework.TestCase) {
		tc := runInner(passing)
		t.Assert("should have passed", tc.Status() == framework.Passed)
		t.Assert("should have run", tc.Ran())
	})

	s.AddTest("failure stops the test", func(t *framework.TestCase) {
		reachedEnd := false
		tc := runInner(func(inner *framework.TestCase) {
			inner.Fail("stop here")
			reachedEnd = true
		})
		t.Assert("code after failure should not run", !reachedEnd)
		t.Assert("should have failed", tc.Status() == framework.Failed)
		t.AssertStrEquals("stop here", failureText(tc))
	})

	s.AddTest("failure outside of run continues", func(t *framework.TestCase) {
		tc := framework.NewTestCase("direct", nil)
		tc.Fail("first")
		tc.Fail("second")
		t.Assert("should have failed", tc.Failed())
		t.AssertStrEquals("first\nsecond", failureText(tc))
	})

	s.AddTest("failure message has location", func(t *framework.TestCase) {
		tc := framework.NewTestCase("direct", nil)
		tc.FailAt(framework.Location{File: "file.go", Line: 12}, "label", "message")
		t.AssertStrEquals("file.go:12: label: message", tc.Message())
	})

	s.AddTest("nested failure only stops inner test", func(t *framework.TestCase) {
		innerFailed := runInner(failing).Failed()
		t.Assert("inner test should have failed", innerFailed)
	})

	s.AddTest("errorf does not stop test", func(t *framework.TestCase) {
		reachedEnd := false
		tc := runInner(func(inner *framework.TestCase) {
			inner.Errorf("soft failure")
			reachedEnd = true
		})
		t.Assert("code after Errorf should run", reachedEnd)
		t.AssertStrEquals("soft failure", failureText(tc))
	})

	s.AddTest("testify assertions", func(t *framework.TestCase) {
		afterRequire := false
		tc := runInner(func(inner *framework.TestCase) {
			assert.True(inner, false)
			require.Equal(inner, 1, 2)
			afterRequire = true
		})
		t.Assert("require should stop the test", !afterRequire)
		assert.Contains(t, tc.Message(), "Should be true")
		assert.Contains(t, tc.Message(), "Not equal")
	})

	s.AddTest("unexpected panic fails test", func(t *framework.TestCase) {
		tc := runInner(func(*framework.TestCase) {
			var m map[string]int
			m["x"] = 1
		})
		t.Assert("should have failed", tc.Failed())
		assert.Contains(t, tc.Message(), "unexpected panic in test")
	})

	s.AddTest("context", func(t *framework.TestCase) {
		tc := framework.NewTestCase("context", nil)
		value := &struct{}{}
		tc.SetContext(value)
		t.AssertPtrEquals(value, tc.Context())
	})
}

package selftests

import (
	"github.com/launchdarkly/unit-test-harness/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func expectFailure(t *framework.TestCase, expectedMessage string, action framework.TestFunction) {
	tc := runInner(action)
	t.Assert("inner test should have failed", tc.Failed())
	t.AssertStrEquals(expectedMessage, failureText(tc))
}

func expectPass(t *framework.TestCase, action framework.TestFunction) {
	tc := runInner(action)
	t.AssertStrEqualsMsg("inner test should have passed", "", tc.Message())
}

func DoAssertionTests(s *framework.FilteredSuite) {
	s.AddTest("assert", func(t *framework.TestCase) {
		expectPass(t, func(tc *framework.TestCase) { tc.Assert("ok", true) })
		expectFailure(t, "test 1", func(tc *framework.TestCase) { tc.Assert("test 1", 1 == 0) })
		expectFailure(t, "assert failed", func(tc *framework.TestCase) { tc.AssertTrue(false) })
	})

	s.AddTest("fail with label", func(t *framework.TestCase) {
		expectFailure(t, "label: message", func(tc *framework.TestCase) { tc.FailWithLabel("label", "message") })
	})

	s.AddTest("string equality", func(t *framework.TestCase) {
		expectPass(t, func(tc *framework.TestCase) { tc.AssertStrEquals("hello", "hello") })
		expectFailure(t, "expected <hello> but was <world>", func(tc *framework.TestCase) {
			tc.AssertStrEquals("hello", "world")
		})
		expectFailure(t, "some text: expected <hello> but was <world>", func(tc *framework.TestCase) {
			tc.AssertStrEqualsMsg("some text", "hello", "world")
		})
	})

	s.AddTest("optional string equality", func(t *framework.TestCase) {
		expectPass(t, func(tc *framework.TestCase) {
			tc.AssertOptionalStrEquals(ldvalue.OptionalString{}, ldvalue.OptionalString{})
		})
		expectFailure(t, "expected <NULL> but was <world>", func(tc *framework.TestCase) {
			tc.AssertOptionalStrEquals(ldvalue.OptionalString{}, ldvalue.NewOptionalString("world"))
		})
		expectFailure(t, "text: expected <hello> but was <NULL>", func(tc *framework.TestCase) {
			tc.AssertOptionalStrEqualsMsg("text", ldvalue.NewOptionalString("hello"), ldvalue.OptionalString{})
		})
	})

	s.AddTest("int equality", func(t *framework.TestCase) {
		expectPass(t, func(tc *framework.TestCase) { tc.AssertIntEquals(42, 42) })
		expectFailure(t, "expected <42> but was <32>", func(tc *framework.TestCase) { tc.AssertIntEquals(42, 32) })
		expectFailure(t, "some text: expected <42> but was <32>", func(tc *framework.TestCase) {
			tc.AssertIntEqualsMsg("some text", 42, 32)
		})
	})

	s.AddTest("double equality", func(t *framework.TestCase) {
		x, y := 3.33, 10.0/3.0
		expectPass(t, func(tc *framework.TestCase) { tc.AssertDblEquals(x, x, 0.0) })
		expectPass(t, func(tc *framework.TestCase) { tc.AssertDblEquals(x, y, 0.01) })
		expectFailure(t, "expected <3.330000> but was <3.333333>", func(tc *framework.TestCase) {
			tc.AssertDblEquals(x, y, 0.001)
		})
		expectFailure(t, "some text: expected <3.330000> but was <3.333333>", func(tc *framework.TestCase) {
			tc.AssertDblEqualsMsg("some text", x, y, 0.001)
		})
	})

	s.AddTest("pointer equality", func(t *framework.TestCase) {
		x := new(int)
		expectPass(t, func(tc *framework.TestCase) { tc.AssertPtrEquals(x, x) })
		expectPass(t, func(tc *framework.TestCase) { tc.AssertPtrEquals(nil, nil) })
		tc := runInner(func(tc *framework.TestCase) { tc.AssertPtrEquals(x, nil) })
		t.Assert("should have failed", tc.Failed())
		assert.Regexp(t, `^expected pointer <0x[0-9a-f]+> but was <0x0>$`, failureText(tc))
	})

	s.AddTest("pointer not nil", func(t *framework.TestCase) {
		expectPass(t, func(tc *framework.TestCase) { tc.AssertPtrNotNil(new(int)) })
		expectFailure(t, "null pointer unexpected", func(tc *framework.TestCase) { tc.AssertPtrNotNil(nil) })
	})
}

package framework

import (
	"fmt"
	"math"
	"reflect"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Fail records a failure at the caller's location and stops the test.
func (tc *TestCase) Fail(message string) {
	tc.FailAt(Caller(1), "", message)
}

// FailWithLabel is like Fail, but prefixes the message with "label: ".
func (tc *TestCase) FailWithLabel(label, message string) {
	tc.FailAt(Caller(1), label, message)
}

// Assert fails the test with the given message if condition is false.
func (tc *TestCase) Assert(message string, condition bool) {
	if condition {
		return
	}
	tc.FailAt(Caller(1), "", message)
}

// AssertTrue fails the test if condition is false.
func (tc *TestCase) AssertTrue(condition bool) {
	if condition {
		return
	}
	tc.FailAt(Caller(1), "", "assert failed")
}

// AssertStrEquals fails the test if the two strings differ.
func (tc *TestCase) AssertStrEquals(expected, actual string) {
	tc.assertStrEquals(Caller(1), "", ldvalue.NewOptionalString(expected), ldvalue.NewOptionalString(actual))
}

// AssertStrEqualsMsg is like AssertStrEquals with a label for the failure message.
func (tc *TestCase) AssertStrEqualsMsg(label, expected, actual string) {
	tc.assertStrEquals(Caller(1), label, ldvalue.NewOptionalString(expected), ldvalue.NewOptionalString(actual))
}

// AssertOptionalStrEquals compares two strings that may be undefined. Two undefined
// values are equal; an undefined value is shown as NULL in the failure message.
func (tc *TestCase) AssertOptionalStrEquals(expected, actual ldvalue.OptionalString) {
	tc.assertStrEquals(Caller(1), "", expected, actual)
}

// AssertOptionalStrEqualsMsg is like AssertOptionalStrEquals with a label.
func (tc *TestCase) AssertOptionalStrEqualsMsg(label string, expected, actual ldvalue.OptionalString) {
	tc.assertStrEquals(Caller(1), label, expected, actual)
}

func (tc *TestCase) assertStrEquals(location Location, label string, expected, actual ldvalue.OptionalString) {
	if expected.IsDefined() == actual.IsDefined() && expected.StringValue() == actual.StringValue() {
		return
	}
	var b Buffer
	b.Append("expected <")
	b.AppendOptional(expected)
	b.Append("> but was <")
	b.AppendOptional(actual)
	b.Append(">")
	tc.FailAt(location, label, b.String())
}

// AssertIntEquals fails the test if the two integers differ.
func (tc *TestCase) AssertIntEquals(expected, actual int) {
	tc.assertIntEquals(Caller(1), "", expected, actual)
}

// AssertIntEqualsMsg is like AssertIntEquals with a label.
func (tc *TestCase) AssertIntEqualsMsg(label string, expected, actual int) {
	tc.assertIntEquals(Caller(1), label, expected, actual)
}

func (tc *TestCase) assertIntEquals(location Location, label string, expected, actual int) {
	if expected == actual {
		return
	}
	tc.FailAt(location, label, fmt.Sprintf("expected <%d> but was <%d>", expected, actual))
}

// AssertDblEquals fails the test if the two numbers differ by more than delta.
func (tc *TestCase) AssertDblEquals(expected, actual, delta float64) {
	tc.assertDblEquals(Caller(1), "", expected, actual, delta)
}

// AssertDblEqualsMsg is like AssertDblEquals with a label.
func (tc *TestCase) AssertDblEqualsMsg(label string, expected, actual, delta float64) {
	tc.assertDblEquals(Caller(1), label, expected, actual, delta)
}

func (tc *TestCase) assertDblEquals(location Location, label string, expected, actual, delta float64) {
	if math.Abs(expected-actual) <= delta {
		return
	}
	tc.FailAt(location, label, fmt.Sprintf("expected <%f> but was <%f>", expected, actual))
}

// AssertPtrEquals fails the test if the two pointers do not refer to the same thing.
func (tc *TestCase) AssertPtrEquals(expected, actual interface{}) {
	tc.assertPtrEquals(Caller(1), "", expected, actual)
}

// AssertPtrEqualsMsg is like AssertPtrEquals with a label.
func (tc *TestCase) AssertPtrEqualsMsg(label string, expected, actual interface{}) {
	tc.assertPtrEquals(Caller(1), label, expected, actual)
}

// AssertPtrNotNil fails the test if p is nil.
func (tc *TestCase) AssertPtrNotNil(p interface{}) {
	if pointerValue(p) != 0 {
		return
	}
	tc.FailAt(Caller(1), "", "null pointer unexpected")
}

func (tc *TestCase) assertPtrEquals(location Location, label string, expected, actual interface{}) {
	e, a := pointerValue(expected), pointerValue(actual)
	if e == a {
		return
	}
	tc.FailAt(location, label, fmt.Sprintf("expected pointer <0x%x> but was <0x%x>", e, a))
}

func pointerValue(v interface{}) uintptr {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.Pointer()
	default:
		panic(misuse("pointer assertion used with non-pointer value of type %T", v))
	}
}

package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Status is the outcome of a TestCase.
type Status int

const (
	// NotRun means the test has not been run yet.
	NotRun Status = iota
	// Passed means the test ran and recorded no failures.
	Passed
	// Failed means at least one failure was recorded, during setup, the test itself, or
	// teardown.
	Failed
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "not run"
	}
}

// TestFunction is the signature of test bodies and of Frame hooks.
type TestFunction func(*TestCase)

// TestCase is a single named test. It is passed to the test function, which uses it to make
// assertions, in the same way that a *testing.T is used in Go tests.
//
// A *TestCase implements require.TestingT, so the testify assert and require packages can
// be used with it.
type TestCase struct {
	id           TestID
	action       TestFunction
	context      interface{}
	ran          bool
	failed       bool
	failureCount int
	message      *Buffer
	guarded      bool
	testLogger   TestLogger
	debugLogger  CapturingLogger
}

// failureEscape is the panic value that carries control from a failure back to the
// runGuarded call of the same test.
type failureEscape struct {
	tc *TestCase
}

// NewTestCase creates a test with the specified name and test function.
func NewTestCase(name string, action TestFunction) *TestCase {
	return &TestCase{
		id:     TestID{Path: []string{name}},
		action: action,
	}
}

// Name returns the name the test was created with.
func (tc *TestCase) Name() string {
	return tc.id.Path[len(tc.id.Path)-1]
}

// ID returns the test's identifier, which includes the name of its suite if the suite has
// one.
func (tc *TestCase) ID() TestID {
	return tc.id
}

// Status returns the current outcome of the test.
func (tc *TestCase) Status() Status {
	switch {
	case tc.failed:
		return Failed
	case tc.ran:
		return Passed
	default:
		return NotRun
	}
}

// Ran returns true if any part of the test (including setup) has been run.
func (tc *TestCase) Ran() bool {
	return tc.ran
}

// Failed returns true if a failure has been recorded.
func (tc *TestCase) Failed() bool {
	return tc.failed
}

// Message returns the accumulated failure text, or an empty string if the test has not
// failed. Multiple failures are separated by newlines.
func (tc *TestCase) Message() string {
	return tc.message.String()
}

// Context returns the value shared between the suite's Frame hooks and its tests.
func (tc *TestCase) Context() interface{} {
	return tc.context
}

// SetContext replaces the shared value. The suite picks up the new value after teardown
// and passes it on to the next test.
func (tc *TestCase) SetContext(context interface{}) {
	tc.context = context
}

// Run runs the test function with failure handling, but without any setup or teardown.
func (tc *TestCase) Run() {
	tc.runGuarded(tc.action)
}

// runGuarded is the resumption point for failures: a failure recorded against tc anywhere
// inside action unwinds to here, and execution continues after the call. Deferred calls in
// the unwound frames still run, but nothing else between the failure and this point does.
func (tc *TestCase) runGuarded(action TestFunction) {
	if tc.guarded {
		panic(misuse("test %q is already running", tc.id))
	}
	tc.guarded = true
	defer func() {
		tc.guarded = false
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(failureEscape); ok && e.tc == tc {
			return
		}
		if _, ok := r.(*MisuseError); ok {
			panic(r)
		}
		if _, ok := r.(failureEscape); ok {
			// belongs to an enclosing test that is running this one
			panic(r)
		}
		tc.recordFailure(callerOutsideFramework(), "",
			fmt.Sprintf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
	}()

	tc.ran = true
	if action != nil {
		action(tc)
	}
}

// FailAt records a failure that was detected at the specified location, optionally
// prefixed by a label. If the test is currently running under the framework, the rest of
// the test function is skipped; otherwise FailAt returns normally.
func (tc *TestCase) FailAt(location Location, label string, message string) {
	tc.recordFailure(location, label, message)
	tc.transfer()
}

func (tc *TestCase) recordFailure(location Location, label string, message string) {
	line := NewBuffer()
	if label != "" {
		line.Append(label)
		line.Append(": ")
	}
	line.Append(message)
	line.Insert(location.String()+": ", 0)

	tc.failed = true
	tc.failureCount++
	if tc.message != nil {
		tc.message.Append("\n")
	} else {
		tc.message = NewBuffer()
	}
	tc.message.Append(line.String())
	tc.logger().TestError(tc.id, errors.New(line.String()))
}

func (tc *TestCase) transfer() {
	if tc.guarded {
		panic(failureEscape{tc})
	}
}

// Errorf records a failure without stopping the test. It is called by the testify assert
// functions.
func (tc *TestCase) Errorf(format string, args ...interface{}) {
	tc.recordFailure(callerOutsideFramework(), "", fmt.Sprintf(format, args...))
}

// FailNow stops the test immediately. It is called by the testify require functions after
// they have called Errorf.
func (tc *TestCase) FailNow() {
	if !tc.failed {
		tc.recordFailure(callerOutsideFramework(), "", "test failed with no failure message")
	}
	tc.transfer()
}

// Debug adds a line of debug output for the test. It is passed to the TestLogger when the
// test finishes.
func (tc *TestCase) Debug(message string, args ...interface{}) {
	tc.debugLogger.Printf(message, args...)
}

func (tc *TestCase) logger() TestLogger {
	if tc.testLogger == nil {
		return NullTestLogger()
	}
	return tc.testLogger
}

func (tc *TestCase) release() {
	tc.message = nil
	tc.context = nil
	tc.action = nil
	tc.testLogger = nil
}

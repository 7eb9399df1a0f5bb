package framework

// Frame is a pair of hooks that a Suite runs before and after each of its tests. The hooks
// receive the same *TestCase as the test, and can make assertions on it: a failure in
// Setup marks the test as failed and skips both the test and Teardown.
//
// A Frame is never modified by the framework, so one Frame can be shared by any number of
// suites.
type Frame struct {
	setup    TestFunction
	teardown TestFunction
}

var defaultFrame = &Frame{}

// NewFrame creates a Frame. Either hook may be nil.
func NewFrame(setup, teardown TestFunction) *Frame {
	return &Frame{setup: setup, teardown: teardown}
}

// DefaultFrame returns a Frame whose hooks do nothing.
func DefaultFrame() *Frame {
	return defaultFrame
}

// Setup runs the setup hook for a test, with failure handling.
func (f *Frame) Setup(tc *TestCase) {
	tc.runGuarded(f.setup)
}

// Teardown runs the teardown hook for a test, with failure handling.
func (f *Frame) Teardown(tc *TestCase) {
	tc.runGuarded(f.teardown)
}

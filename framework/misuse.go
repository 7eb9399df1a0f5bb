package framework

import "fmt"

// MisuseError is the panic value used when the framework itself is used incorrectly, for
// instance by adding more test cases to a suite than it can hold. Unlike a test failure,
// it is never recovered by the runner.
type MisuseError struct {
	Message string
}

func (e *MisuseError) Error() string {
	return "test framework misuse: " + e.Message
}

func misuse(format string, args ...interface{}) *MisuseError {
	return &MisuseError{Message: fmt.Sprintf(format, args...)}
}

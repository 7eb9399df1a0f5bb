// Package selftests contains the framework's own test suites, written with the framework
// itself rather than with "go test". The driver program in the repository root runs them.
//
// Many of these tests create and run an inner TestCase or Suite and then make assertions,
// on the outer test, about what happened to the inner one.
package selftests

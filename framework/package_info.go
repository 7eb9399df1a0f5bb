// Package framework contains the implementation of a small unit-test runner that can be
// driven from an ordinary Go program rather than from "go test".
//
// The general model is:
//
// 1. A TestCase is a named function that receives the *TestCase itself. Assertions made
// through it record failures; a failure aborts the rest of the test function and control
// returns to the runner, which moves on to the next test.
//
// 2. A Suite is an ordered list of test cases sharing a Frame, which is a pair of setup and
// teardown hooks run around every test. Suites can be chained so that one Run call covers
// all of them.
//
// 3. The Summary and Details functions render the outcome of a run as text, into a Buffer
// supplied by the caller. Nothing in this package writes to stdout or to files.
package framework

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/unit-test-harness/framework"

	"github.com/fatih/color"
)

var (
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	Verbose              bool
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	lastHeader           string
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if c.Verbose {
		c.header(id)
	}
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	c.header(id)
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Fprintf(c.Out, "  %s: %s\n", failedLabel("FAILED"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		c.header(id)
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if !c.Verbose {
		return
	}
	if reason == "" {
		fmt.Fprintf(c.Out, "  %s: %s\n", skippedLabel("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.Out, "  %s: %s (%s)\n", skippedLabel("SKIPPED"), id, reason)
	}
}

// header prints the test's ID unless it was the last thing printed.
func (c *ConsoleTestLogger) header(id framework.TestID) {
	if s := id.String(); s != c.lastHeader {
		fmt.Fprintf(c.Out, "[%s]\n", s)
		c.lastHeader = s
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/launchdarkly/unit-test-harness/framework"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type commandParams struct {
	programName string
	filters     framework.RegexFilters
	maxCases    ldvalue.OptionalInt
	outFile     string
	verbose     bool
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	var maxCases int
	var noColor bool

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.IntVar(&maxCases, "max-cases", framework.DefaultMaxCases, "maximum number of tests per suite")
	fs.StringVar(&c.outFile, "out", "", "also write the report to this file")
	fs.BoolVar(&c.verbose, "verbose", false, "log the name of each test as it starts")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")

	c.programName = args[0]
	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if maxCases < 1 {
		fmt.Fprintln(os.Stderr, "-max-cases must be at least 1")
		fs.Usage()
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	c.maxCases = ldvalue.NewOptionalInt(maxCases)
	if noColor {
		color.NoColor = true
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

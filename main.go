package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/launchdarkly/unit-test-harness/framework"
	"github.com/launchdarkly/unit-test-harness/selftests"
)

const maxExitCode = 125

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params, os.Stdout, selftests.AllSuites))
}

func run(params commandParams, out io.Writer, buildSuites func(selftests.Config) *framework.Suite) int {
	framework.PrintFilterDescription(out, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		Verbose:              params.verbose,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	config := selftests.Config{
		Filter:     params.filters.AsFilter,
		TestLogger: testLogger,
		MaxCases:   params.maxCases,
	}
	head := buildSuites(config)
	head.RunWithLogger(testLogger)

	output := framework.NewBuffer()
	framework.Summary(head, output)
	framework.Details(head, output)
	fmt.Fprintln(out, output.String())

	if params.outFile != "" {
		if err := os.WriteFile(params.outFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write report to %s: %s\n", params.outFile, err)
			return 1
		}
	}

	failCount := head.TotalFailCount()
	if failCount > 0 {
		fmt.Fprintf(out, "To run only the failed tests:\n  %s\n", rerunCommand(params.programName, framework.CollectResults(head)))
	}
	return exitCode(failCount)
}

func rerunCommand(programName string, results framework.Results) string {
	var cmd commandBuilder
	cmd.add(programName)
	for _, f := range results.Failures {
		cmd.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return cmd.String()
}

func exitCode(failCount int) int {
	if failCount > maxExitCode {
		return maxExitCode
	}
	return failCount
}

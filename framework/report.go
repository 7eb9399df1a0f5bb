package framework

// Summary appends one character per test in the suite's chain to out, "F" for a failed
// test and "." for any other, followed by a blank line.
func Summary(s *Suite, out *Buffer) {
	for _, suite := range s.Chain() {
		for _, tc := range suite.cases {
			if tc.failed {
				out.AppendChar('F')
			} else {
				out.AppendChar('.')
			}
		}
	}
	out.Append("\n\n")
}

// Details appends a report of all failures in the suite's chain to out. If there were no
// failures, it is just a line saying how many tests passed.
func Details(s *Suite, out *Buffer) {
	failCount, testCount := 0, 0
	var failures Buffer

	for _, suite := range s.Chain() {
		testCount += len(suite.cases)
		for _, tc := range suite.cases {
			if !tc.failed {
				continue
			}
			failCount++
			failures.AppendFormat("%d) ", failCount)
			failures.Append(tc.Name())
			failures.Append(": ")
			failures.Append(tc.Message())
			failures.AppendChar('\n')
		}
	}

	passCount := testCount - failCount
	if failCount == 0 {
		out.AppendFormat("OK (%d %s)\n", passCount, plural(passCount, "test", "tests"))
		return
	}

	if failCount == 1 {
		out.Append("There was 1 failure:\n")
	} else {
		out.AppendFormat("There were %d failures:\n", failCount)
	}
	out.Append(failures.String())
	out.Append("\n!!!FAILURES!!!\n")
	out.AppendFormat("Runs: %d ", testCount)
	out.AppendFormat("Passes: %d ", passCount)
	out.AppendFormat("Fails: %d\n", failCount)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

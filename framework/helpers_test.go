package framework

import (
	"fmt"
	"strings"
)

type recordingTestLogger struct {
	events []string
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, "started "+id.String())
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, fmt.Sprintf("error %s: %s", id, firstLine(err.Error())))
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	r.events = append(r.events, fmt.Sprintf("finished %s failed=%t debug=%d", id, failed, len(debugOutput)))
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, fmt.Sprintf("skipped %s (%s)", id, reason))
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// stripLocations removes the "file:line: " prefix from each line of a failure message.
func stripLocations(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		if parts := strings.SplitN(line, ": ", 2); len(parts) == 2 && strings.Contains(parts[0], ".go:") {
			lines[i] = parts[1]
		}
	}
	return strings.Join(lines, "\n")
}

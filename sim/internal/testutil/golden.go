// Package testutil provides shared test infrastructure for the MLFQ simulator.
// It consolidates event-log assertion helpers used across sim/ test packages.
package testutil

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// AssertLinesEqual fails the test with a unified diff when got differs from want.
func AssertLinesEqual(t *testing.T, name string, want, got []string) {
	t.Helper()
	if strings.Join(want, "\n") == strings.Join(got, "\n") {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        addNewlines(want),
		B:        addNewlines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("%s: computing diff: %v", name, err)
	}
	t.Errorf("%s: event log mismatch:\n%s", name, diff)
}

func addNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

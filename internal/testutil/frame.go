// Package testutil holds helpers shared by tests that inspect rendered
// frames.
package testutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// Plain strips styling from a rendered frame.
func Plain(frame string) string {
	return ansi.Strip(frame)
}

// Lines splits a rendered frame into unstyled lines without the trailing
// empty line.
func Lines(frame string) []string {
	return strings.Split(strings.TrimSuffix(Plain(frame), "\n"), "\n")
}

// RequireContains fails the test unless every want appears in frame.
func RequireContains(t testing.TB, frame string, wants ...string) {
	t.Helper()
	plain := Plain(frame)
	for _, want := range wants {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in frame:\n%s", want, plain)
		}
	}
}

// RequireNotContains fails the test if any unwanted text appears in frame.
func RequireNotContains(t testing.TB, frame string, unwanted ...string) {
	t.Helper()
	plain := Plain(frame)
	for _, u := range unwanted {
		if strings.Contains(plain, u) {
			t.Fatalf("did not expect %q in frame:\n%s", u, plain)
		}
	}
}

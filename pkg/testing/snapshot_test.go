package testing

import (
	"strings"
	"testing"
)

func TestSnapshot_CaptureAndCompare(t *testing.T) {
	snap := CaptureSnapshot(sampleTree())

	snap.Matches(t,
		"== Sample ==",
		"",
		"Heads 42",
		"",
		"[ Flip ]",
		"",
		"Heads again",
	)
	if !snap.Contains("Flip") || snap.Contains("Flop") {
		t.Errorf("Contains gave wrong answers for:\n%s", snap)
	}
	if strings.Count(snap.String(), "\n") != len(snap.Lines)-1 {
		t.Error("String should join lines with newlines")
	}
}

func TestSnapshot_MismatchReportsDiff(t *testing.T) {
	rec := &recordingT{name: "mismatch"}
	CaptureSnapshot(sampleTree()).Matches(rec, "== Sample ==")

	if len(rec.errors) != 1 {
		t.Fatalf("expected one error, got %d", len(rec.errors))
	}
	if !strings.Contains(rec.errors[0], "snapshot mismatch") {
		t.Errorf("unexpected error format %q", rec.errors[0])
	}
}

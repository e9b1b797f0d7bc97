package testing

import (
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/asciistats/pkg/render"
	"github.com/go-drift/asciistats/pkg/view"
)

// TestingT is the subset of *testing.T used by the tester and snapshots,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the text rendering of a view tree.
type Snapshot struct {
	Lines []string
}

// CaptureSnapshot renders root.
func CaptureSnapshot(root view.Node) Snapshot {
	return Snapshot{Lines: render.Lines(root)}
}

// String returns the snapshot as newline-separated text.
func (s Snapshot) String() string {
	return strings.Join(s.Lines, "\n")
}

// Contains reports whether any line contains substr.
func (s Snapshot) Contains(substr string) bool {
	for _, line := range s.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Matches fails t when the snapshot differs from want.
func (s Snapshot) Matches(t TestingT, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, s.Lines); diff != "" {
		t.Errorf("snapshot mismatch in %s (-want +got):\n%s", t.Name(), diff)
	}
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asciistats.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key   rune
		cmd   command
		title string
	}{
		{'f', commandPress, "Flip Once"},
		{'F', commandPress, "Flip Once"},
		{'b', commandPress, "Flip 7 Times"},
		{'?', commandPress, "Help"},
		{'<', commandPress, "Back"},
		{'q', commandQuit, ""},
		{'x', commandNone, ""},
	}
	for _, tt := range tests {
		c, title := keyCommand(tt.key, 7)
		if c != tt.cmd || title != tt.title {
			t.Errorf("keyCommand(%q) = %v, %q; want %v, %q", tt.key, c, title, tt.cmd, tt.title)
		}
	}
}

func TestReadKeys(t *testing.T) {
	var keys []rune
	done := false
	readKeys(strings.NewReader("fb\n\n ? q\n"), func(k rune) { keys = append(keys, k) }, func() { done = true })

	if diff := cmp.Diff([]rune{'f', 'b', 'f', '?', 'q'}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if !done {
		t.Error("done should be called at end of input")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "asciistats version "+Version) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSimulateCommand(t *testing.T) {
	cfg := writeConfig(t, "seed: 11\nbatch: 5\n")
	out, err := execute(t, "", "simulate", "--config", cfg, "--flips", "2", "--batches", "1")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	// Two single flips, then a batch ending at cycle 7 flips cycles 2..7.
	if !strings.Contains(out, "flips: 8\n") {
		t.Errorf("unexpected final screen:\n%s", out)
	}
	if !strings.Contains(out, "[ Flip 5 Times ]") {
		t.Errorf("batch button should be enabled after the batch:\n%s", out)
	}
}

func TestSimulateCommand_SeedIsReproducible(t *testing.T) {
	cfg := writeConfig(t, "seed: 3\nbatch: 4\n")
	first, err := execute(t, "", "simulate", "--config", cfg, "--batches", "2")
	if err != nil {
		t.Fatal(err)
	}
	second, err := execute(t, "", "simulate", "--config", cfg, "--batches", "2")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed produced different screens:\n%s\n---\n%s", first, second)
	}
}

func TestSimulateCommand_BadConfig(t *testing.T) {
	cfg := writeConfig(t, "version: v9.0.0\n")
	if _, err := execute(t, "", "simulate", "--config", cfg); err == nil {
		t.Error("expected an error for an unsupported config version")
	}
}

func TestSnapshotCommand(t *testing.T) {
	cfg := writeConfig(t, "seed: 1\nbatch: 2\n")
	out := filepath.Join(t.TempDir(), "shot.bmp")
	if _, err := execute(t, "", "snapshot", "--config", cfg, "--out", out); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Errorf("expected a BMP file, got header %q", data[:min(len(data), 2)])
	}
}

func TestRunCommand_Keys(t *testing.T) {
	cfg := writeConfig(t, "seed: 1\n")
	out, err := execute(t, "f\nf\n?\n<\nq\n", "run", "--config", cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "== Help ==") {
		t.Errorf("help screen was never drawn:\n%s", out)
	}
	if !strings.HasSuffix(out, "flips: 2\n") {
		t.Errorf("expected final summary after two flips:\n%s", out)
	}
}

func TestRunCommand_EndOfInputWaitsForBatch(t *testing.T) {
	cfg := writeConfig(t, "seed: 1\nbatch: 3\n")
	out, err := execute(t, "b\n", "run", "--config", cfg, "--fps", "500")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out, "flips: 4\n") {
		t.Errorf("run should finish the batch before exiting:\n%s", out)
	}
}

package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"

	"github.com/go-drift/asciistats/pkg/view"
)

type hidden struct {
	view.Offstage
}

func TestLines_Screen(t *testing.T) {
	inner := view.NewStack(view.Vertical)
	inner.Margins = view.Insets{Top: 1, Left: 2}
	inner.Append(view.NewLabel("b"), &hidden{}, view.NewLabel("c"))

	screen := view.NewScreen("Demo")
	screen.Append(view.NewLabel("a"), &hidden{}, inner)

	want := []string{
		"== Demo ==",
		"",
		"a",
		"",
		"",
		"  b",
		"  c",
	}
	if diff := cmp.Diff(want, Lines(screen)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_LabelAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align view.Align
		want  string
	}{
		{"natural", view.AlignNatural, "ab   |"},
		{"center", view.AlignCenter, " ab  |"},
		{"trailing", view.AlignTrailing, "   ab|"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := view.NewLabel("ab")
			l.MinWidth = 5
			l.Align = tt.align
			row := view.NewStack(view.Horizontal)
			row.Append(l, view.NewLabel("|"))
			if got := Text(row); got != tt.want+"\n" {
				t.Errorf("got %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestLines_RowAlignsBlocksAtTop(t *testing.T) {
	right := view.NewStack(view.Vertical)
	right.Append(view.NewLabel("x"), view.NewLabel("y"))

	disabled := view.NewButton("Stop", nil)
	disabled.SetEnabled(false)

	row := view.NewStack(view.Horizontal)
	row.Spacing = 1
	row.Append(view.NewButton("Go", nil), right, disabled)

	want := []string{
		"[ Go ] x ( Stop )",
		"       y",
	}
	if diff := cmp.Diff(want, Lines(row)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_TitleEmphasis(t *testing.T) {
	l := view.NewLabel("Outcome")
	l.Emphasis = view.EmphasisTitle
	if got := Lines(l); len(got) != 1 || got[0] != "OUTCOME" {
		t.Errorf("got %q, want [OUTCOME]", got)
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text(view.NewStack(view.Vertical)); got != "" {
		t.Errorf("empty stack should render nothing, got %q", got)
	}
}

func TestEncode_PNG(t *testing.T) {
	stack := view.NewStack(view.Vertical)
	stack.Append(view.NewLabel("heads"), view.NewLabel("tails!"))

	var buf bytes.Buffer
	if err := Encode(&buf, stack, FormatPNG, ImageOptions{Padding: 4}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 6*7+8 || b.Dy() != 2*13+8 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestEncode_BMP(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, view.NewLabel("x"), FormatBMP, ImageOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := bmp.Decode(&buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, view.NewLabel("x"), Format("gif"), ImageOptions{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"out.png":      FormatPNG,
		"OUT.BMP":      FormatBMP,
		"frame":        FormatPNG,
		"dir.bmp/shot": FormatPNG,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

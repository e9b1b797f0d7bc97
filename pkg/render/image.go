package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/asciistats/pkg/errors"
	"github.com/go-drift/asciistats/pkg/view"
)

// Format selects the encoding of an image snapshot.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// FormatFromPath picks the format matching the extension of path, falling
// back to PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return FormatBMP
	}
	return FormatPNG
}

// ImageOptions configures Rasterize.
type ImageOptions struct {
	// Padding surrounds the text, in pixels.
	Padding int
	// Foreground and Background default to black on white.
	Foreground color.Color
	Background color.Color
}

// Rasterize draws the text rendering of node into an image using a fixed
// 7x13 bitmap face. Glyphs the face lacks are drawn as its fallback glyph.
func Rasterize(node view.Node, opts ImageOptions) *image.RGBA {
	lines := Lines(node)
	face := basicfont.Face7x13
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	cols := 0
	for _, line := range lines {
		cols = max(cols, width(line))
	}
	lineHeight := face.Metrics().Height.Ceil()
	w := cols*face.Advance + 2*opts.Padding
	h := len(lines)*lineHeight + 2*opts.Padding
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Foreground),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(opts.Padding, opts.Padding+i*lineHeight+face.Ascent)
		d.DrawString(line)
	}
	return img
}

// Encode writes a snapshot of node to w in the given format.
func Encode(w io.Writer, node view.Node, format Format, opts ImageOptions) error {
	img := Rasterize(node, opts)
	var err error
	switch Format(strings.ToLower(string(format))) {
	case FormatPNG, "":
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		err = fmt.Errorf("unsupported image format %q", format)
	}
	return errors.E("render.Encode", errors.KindRender, err)
}

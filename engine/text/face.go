package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/hubastard/bloom/engine/assets"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a rasterizable font at one pixel size.
type Face struct {
	face  font.Face
	src   *opentype.Font
	size  float32
	sized map[float32]*Face
}

var _ render.Font = (*Face)(nil)

// Bitmap wraps a fixed-size face such as basicfont.Face7x13.
func Bitmap(f font.Face) *Face {
	return &Face{face: f, size: float32(f.Metrics().Height.Ceil())}
}

// ParseTTF builds a face from TrueType/OpenType bytes.
func ParseTTF(data []byte, sizePx float32) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return newFace(ft, sizePx)
}

// LoadTTF reads a font from the asset fonts directory.
func LoadTTF(name string, sizePx float32) (*Face, error) {
	data, err := assets.LoadFont(name)
	if err != nil {
		return nil, err
	}
	return ParseTTF(data, sizePx)
}

func newFace(ft *opentype.Font, sizePx float32) (*Face, error) {
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &Face{face: face, src: ft, size: sizePx}, nil
}

func (f *Face) Face() font.Face { return f.face }
func (f *Face) SizePx() float32 { return f.size }

func (f *Face) Ascent() int { return f.face.Metrics().Ascent.Ceil() }

func (f *Face) LineHeight() int { return f.face.Metrics().Height.Ceil() }

// Measure returns the bounding box of s; newlines start a new line.
func (f *Face) Measure(s string) unit.Size {
	lines := strings.Split(s, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(f.face, line).Ceil())
	}
	return unit.Sz(w, len(lines)*f.LineHeight())
}

// WithSize returns this font at px. Bitmap faces cannot scale.
func (f *Face) WithSize(px float32) render.Font {
	if f.src == nil || px <= 0 || px == f.size {
		return f
	}
	if g, ok := f.sized[px]; ok {
		return g
	}
	g, err := newFace(f.src, px)
	if err != nil {
		return f
	}
	if f.sized == nil {
		f.sized = map[float32]*Face{}
	}
	f.sized[px] = g
	return g
}

// Draw renders s with the top-left of its first line box at at.
func (f *Face) Draw(dst draw.Image, s string, at unit.Point, c color.Color) {
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: f.face}
	baseY := at.Y + f.Ascent()
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(at.X, baseY)
		d.DrawString(line)
		baseY += f.LineHeight()
	}
}

var fallback render.Font = Bitmap(basicfont.Face7x13)

// Default is the font used by views that were not given one.
func Default() render.Font { return fallback }

// SetDefault replaces the process default font. Hosts call it once at
// startup, before any view is measured.
func SetDefault(f render.Font) {
	if f != nil {
		fallback = f
	}
}

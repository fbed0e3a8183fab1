// Package raster is a software render.Surface over an *image.RGBA.
package raster

import (
	"image"
	"image/color"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/text"
	"github.com/hubastard/bloom/engine/unit"
	"golang.org/x/image/draw"
)

// GlyphDrawer is a font that can rasterize itself. *text.Face is one.
type GlyphDrawer interface {
	Draw(dst draw.Image, s string, at unit.Point, c color.Color)
}

var _ GlyphDrawer = (*text.Face)(nil)

type Surface struct {
	img *image.RGBA
}

var _ render.Surface = (*Surface)(nil)

func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Image is the backing image. It is replaced by Resize.
func (s *Surface) Image() *image.RGBA { return s.img }

// Resize reallocates the backing image if the size changed. The contents
// are lost.
func (s *Surface) Resize(w, h int) {
	if s.Size() == unit.Sz(w, h) {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

func (s *Surface) Size() unit.Size {
	b := s.img.Bounds()
	return unit.Sz(b.Dx(), b.Dy())
}

func (s *Surface) Clear(c colors.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) FillRect(r unit.Rect, p render.Paint) {
	dst := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(s.img.Bounds())
	if dst.Empty() || p.Color[3] <= 0 {
		return
	}
	op := draw.Over
	if p.Color[3] >= 1 {
		op = draw.Src
	}
	draw.Draw(s.img, dst, image.NewUniform(p.Color), image.Point{}, op)
}

// DrawString rasterizes s when f can draw glyphs; otherwise it falls back
// to the default font.
func (s *Surface) DrawString(str string, at unit.Point, f render.Font, p render.Paint) {
	g, ok := f.(GlyphDrawer)
	if !ok {
		if g, ok = text.Default().(GlyphDrawer); !ok {
			return
		}
	}
	g.Draw(s.img, str, at, p.Color)
}

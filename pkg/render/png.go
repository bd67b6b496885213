package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	"github.com/inkship/inkship/pkg/wpi"
)

// Plane extent of an A4 page at 96 dpi; the PNG canvas is scaled onto it.
const (
	planeWidth  = 794
	planeHeight = 1123
)

// PNGRenderer rasterizes strokes onto a white canvas.
type PNGRenderer struct {
	opts  Options
	color color.RGBA
}

// Format implements Renderer.
func (r *PNGRenderer) Format() Format { return FormatPNG }

// Extension implements Renderer.
func (r *PNGRenderer) Extension() string { return ".png" }

// Render draws every stroke as a polyline of width StrokeWidth and encodes the
// canvas as PNG.
func (r *PNGRenderer) Render(w io.Writer, strokes []wpi.Stroke) error {
	img := r.Rasterize(strokes)
	return png.Encode(w, img)
}

// Rasterize draws strokes and returns the canvas.
func (r *PNGRenderer) Rasterize(strokes []wpi.Stroke) *image.RGBA {
	width, height := r.opts.PNGWidth, r.opts.PNGHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	sx := float32(width) / planeWidth
	sy := float32(height) / planeHeight
	half := float32(r.opts.StrokeWidth) / 2 * sx

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	for _, s := range strokes {
		for i, p := range s.Points {
			x, y := float32(p.X)*sx, float32(p.Y)*sy
			dot(z, x, y, half)
			if i == 0 {
				continue
			}
			prev := s.Points[i-1]
			segment(z, float32(prev.X)*sx, float32(prev.Y)*sy, x, y, half)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(r.color), image.Point{})
	return img
}

// segment adds a quad of half-width h around the line (x0,y0)-(x1,y1). All
// quads and dots share one winding so overlaps never cancel.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, h float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*h, dx/l*h
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// dot covers the joint at a vertex.
func dot(z *vector.Rasterizer, x, y, h float32) {
	z.MoveTo(x-h, y+h)
	z.LineTo(x+h, y+h)
	z.LineTo(x+h, y-h)
	z.LineTo(x-h, y-h)
	z.ClosePath()
}

var namedColors = map[string]color.RGBA{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
	"red":   {255, 0, 0, 255},
	"green": {0, 128, 0, 255},
	"blue":  {0, 0, 255, 255},
	"gray":  {128, 128, 128, 255},
	"grey":  {128, 128, 128, 255},
}

// parseColor accepts a few named colors and #rgb / #rrggbb.
func parseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return color.RGBA{}, fmt.Errorf("unsupported stroke color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("unsupported stroke color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unsupported stroke color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

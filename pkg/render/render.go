package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/inkship/inkship/pkg/wpi"
)

// Format names an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG, FormatJSON}

// ParseFormat returns the Format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of svg, png, json)", s)
}

// Renderer writes strokes in one format.
type Renderer interface {
	Format() Format
	// Extension is appended to the input path to name the artifact.
	Extension() string
	Render(w io.Writer, strokes []wpi.Stroke) error
}

// Options configures renderers. Zero values fall back to DefaultOptions.
type Options struct {
	// PageWidth and PageHeight are SVG lengths, e.g. "210mm".
	PageWidth  string
	PageHeight string

	StrokeColor string
	StrokeWidth float64

	// PNG canvas size in pixels. Plane units are mapped 1:1 at the default size.
	PNGWidth  int
	PNGHeight int

	// GroupLayers wraps each layer's strokes in an SVG group.
	GroupLayers bool
}

// DefaultOptions returns an A4 page with black hairline strokes.
func DefaultOptions() Options {
	return Options{
		PageWidth:   "210mm",
		PageHeight:  "297mm",
		StrokeColor: "black",
		StrokeWidth: 1,
		PNGWidth:    794,
		PNGHeight:   1123,
		GroupLayers: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageWidth == "" {
		o.PageWidth = d.PageWidth
	}
	if o.PageHeight == "" {
		o.PageHeight = d.PageHeight
	}
	if o.StrokeColor == "" {
		o.StrokeColor = d.StrokeColor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	if o.PNGWidth <= 0 {
		o.PNGWidth = d.PNGWidth
	}
	if o.PNGHeight <= 0 {
		o.PNGHeight = d.PNGHeight
	}
	return o
}

// New returns the renderer for format.
func New(format Format, opts Options) (Renderer, error) {
	opts = opts.withDefaults()
	switch format {
	case FormatSVG:
		return &SVGRenderer{opts: opts}, nil
	case FormatPNG:
		color, err := parseColor(opts.StrokeColor)
		if err != nil {
			return nil, err
		}
		return &PNGRenderer{opts: opts, color: color}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

package render

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/inkship/inkship/pkg/wpi"
)

// SVGRenderer writes one polyline per stroke.
type SVGRenderer struct {
	opts Options
}

// Format implements Renderer.
func (r *SVGRenderer) Format() Format { return FormatSVG }

// Extension implements Renderer.
func (r *SVGRenderer) Extension() string { return ".svg" }

// Render writes strokes as an SVG document. Strokes without points are omitted.
func (r *SVGRenderer) Render(w io.Writer, strokes []wpi.Stroke) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(`<?xml version="1.0" standalone="no"?>` + "\n")
	bw.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="`)
	escape(bw, r.opts.PageWidth)
	bw.WriteString(`" height="`)
	escape(bw, r.opts.PageHeight)
	bw.WriteString("\">\n")

	style := make([]byte, 0, 64)
	style = append(style, "fill:none; stroke:"...)
	style = append(style, r.opts.StrokeColor...)
	style = append(style, "; stroke-width:"...)
	style = strconv.AppendFloat(style, r.opts.StrokeWidth, 'f', -1, 64)

	layer := -1
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		if r.opts.GroupLayers && s.Layer != layer {
			if layer >= 0 {
				bw.WriteString("</g>\n")
			}
			layer = s.Layer
			bw.WriteString(`<g id="layer-` + strconv.Itoa(layer) + "\">\n")
		}

		bw.WriteString(`<polyline points="`)
		var num []byte
		for i, p := range s.Points {
			if i > 0 {
				bw.WriteByte(' ')
			}
			num = strconv.AppendFloat(num[:0], p.X, 'f', -1, 64)
			num = append(num, ',')
			num = strconv.AppendFloat(num, p.Y, 'f', -1, 64)
			bw.Write(num)
		}
		bw.WriteString(`" style="`)
		escape(bw, string(style))
		bw.WriteString("\"/>\n")
	}
	if layer >= 0 {
		bw.WriteString("</g>\n")
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// escape writes s as XML attribute text. bufio.Writer keeps the first error
// and Flush reports it.
func escape(w io.Writer, s string) {
	_ = xml.EscapeText(w, []byte(s))
}

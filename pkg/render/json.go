package render

import (
	"encoding/json"
	"io"

	"github.com/inkship/inkship/pkg/wpi"
)

// JSONRenderer dumps strokes as point lists.
type JSONRenderer struct{}

type jsonDocument struct {
	Strokes []jsonStroke `json:"strokes"`
}

type jsonStroke struct {
	Layer  int          `json:"layer"`
	Points [][2]float64 `json:"points"`
}

// Format implements Renderer.
func (JSONRenderer) Format() Format { return FormatJSON }

// Extension implements Renderer.
func (JSONRenderer) Extension() string { return ".json" }

// Render writes {"strokes":[{"layer":0,"points":[[x,y],...]}]}. Empty strokes are kept.
func (JSONRenderer) Render(w io.Writer, strokes []wpi.Stroke) error {
	doc := jsonDocument{Strokes: make([]jsonStroke, 0, len(strokes))}
	for _, s := range strokes {
		js := jsonStroke{Layer: s.Layer, Points: make([][2]float64, 0, len(s.Points))}
		for _, p := range s.Points {
			js.Points = append(js.Points, [2]float64{p.X, p.Y})
		}
		doc.Strokes = append(doc.Strokes, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

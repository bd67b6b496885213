// Package inkship converts digitizer-pen capture files (WPI) into stroke
// drawings.
//
// Example usage:
//
//	res, err := inkship.DecodeFile("sketch.wpi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, _ := render.New(render.FormatSVG, render.DefaultOptions())
//	if err := r.Render(os.Stdout, res.Strokes); err != nil {
//	    log.Fatal(err)
//	}
package inkship

import (
	"io"

	"github.com/inkship/inkship/pkg/wpi"
)

// Stroke is one pen-down gesture in drawing order.
type Stroke = wpi.Stroke

// Point is a position in the normalized drawing plane.
type Point = wpi.Point

// Result holds the strokes and samples of a decoded capture.
type Result = wpi.Result

// Decode decodes a whole capture from r.
// It returns an error, and no strokes, if any block is malformed.
func Decode(r io.Reader, opts ...wpi.Option) (*Result, error) {
	return wpi.Decode(r, opts...)
}

// DecodeFile opens and decodes the capture at path.
func DecodeFile(path string, opts ...wpi.Option) (*Result, error) {
	return wpi.DecodeFile(path, opts...)
}

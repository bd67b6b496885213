// Package wpi decodes digitizer-pen capture files (WPI) into stroke geometry.
//
// A capture starts with an opaque header of HeaderSize bytes, followed by a
// sequence of blocks:
//
//	[descriptor:1][length:1][payload:length-2]
//
// Stroke-control blocks delimit strokes; pen-XY blocks carry one sensor
// coordinate pair each. Pressure and tilt samples are decoded and recorded
// but not attached to points.
//
// # Usage
//
//	res, err := wpi.DecodeFile("sketch.wpi", wpi.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for _, s := range res.Strokes {
//	    // s.Points are in drawing order
//	}
//
// # Errors
//
// The format has no resynchronisation marker, so any malformed block aborts
// the whole pass and no strokes are returned. Errors are *DecodeError values
// wrapping one of ErrUnknownDescriptor, ErrTruncated, ErrMalformedLength or
// ErrPayloadSize.
package wpi

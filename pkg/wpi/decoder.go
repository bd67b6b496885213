package wpi

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/inkship/inkship/pkg/log"
)

// PressureSample is a recorded pen-pressure reading.
type PressureSample struct {
	Offset int64
	Value  int16
}

// TiltSample is a recorded pen-tilt reading.
type TiltSample struct {
	Offset int64
	X      uint8
	Y      uint8
}

// Stats summarises a successful pass.
type Stats struct {
	Blocks map[Descriptor]int
	Points int
	// Strokes counts flushed strokes, including empty ones.
	Strokes int
	// Layers counts layer markers.
	Layers int
	// Bytes is the total number of bytes consumed, header included.
	Bytes int64
	// Unterminated is the number of points still buffered at end of stream.
	// They are not part of any stroke.
	Unterminated int
	// DroppedPoints counts points discarded under IdlePointsDrop.
	DroppedPoints int
}

// Result is the outcome of a successful decode.
type Result struct {
	// Strokes in the order they were completed.
	Strokes  []Stroke
	Pressure []PressureSample
	Tilt     []TiltSample
	Stats    Stats
}

// Decoder drives a single decoding pass over a capture stream.
type Decoder struct {
	cursor *Cursor
	blocks *BlockReader
	acc    *Accumulator
	opts   options
	used   bool
}

// NewDecoder creates a decoder reading from r. r must be positioned at the
// start of the capture, before the header.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := NewCursor(r)
	return &Decoder{
		cursor: c,
		blocks: NewBlockReader(c),
		acc:    NewAccumulator(o.idlePoints),
		opts:   o,
	}
}

// Decode consumes the whole stream. On success it returns every completed
// stroke; on any error it returns nil and the error. A Decoder can be used
// only once.
func (d *Decoder) Decode() (*Result, error) {
	if d.used {
		return nil, errors.New("wpi: decoder already used")
	}
	d.used = true

	logger := d.opts.logger
	if err := d.cursor.SkipHeader(); err != nil {
		return nil, err
	}

	res := &Result{Stats: Stats{Blocks: make(map[Descriptor]int)}}
	for {
		logger.Trace("next block", log.Hex("offset", d.cursor.Position()))
		b, err := d.blocks.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("decode aborted", log.Err(err), log.Hex("offset", d.cursor.Position()))
			return nil, err
		}

		ev, err := DecodeBlock(b)
		if err != nil {
			logger.Warn("decode aborted", log.Err(err), log.Hex("offset", b.Offset))
			return nil, err
		}
		res.Stats.Blocks[b.Descriptor]++
		d.opts.diagnostics.Observe(b.Offset, ev)
		d.apply(res, b, ev)
	}

	res.Stats.Bytes = d.cursor.Position()
	res.Stats.Unterminated = d.acc.Pending()
	res.Stats.DroppedPoints = d.acc.Dropped()
	if n := res.Stats.Unterminated; n > 0 {
		logger.Warn("stream ended inside a stroke", log.Int("points", n))
	}
	logger.Info("end of stream reached cleanly",
		log.Int("strokes", res.Stats.Strokes),
		log.Int("points", res.Stats.Points),
		log.Int64("bytes", res.Stats.Bytes))
	return res, nil
}

func (d *Decoder) apply(res *Result, b Block, ev Event) {
	switch e := ev.(type) {
	case StrokeStart, StrokeEnd:
	case StrokeLayer:
		res.Stats.Layers++
	case PointObserved:
		res.Stats.Points++
	case PressureObserved:
		res.Pressure = append(res.Pressure, PressureSample{Offset: b.Offset, Value: e.Pressure})
		return
	case TiltObserved:
		res.Tilt = append(res.Tilt, TiltSample{Offset: b.Offset, X: e.X, Y: e.Y})
		return
	case Skipped:
		return
	}

	before := d.acc.Dropped()
	if s, ok := d.acc.Handle(ev); ok {
		res.Strokes = append(res.Strokes, s)
		res.Stats.Strokes++
	}
	if d.acc.Dropped() > before {
		p := ev.(PointObserved)
		d.opts.diagnostics.Observe(b.Offset, PointDropped{Point: p.Point, RawX: p.RawX, RawY: p.RawY})
		d.opts.logger.Warn("point outside stroke dropped", log.Hex("offset", b.Offset))
	}
}

// Decode decodes a whole capture from r.
func Decode(r io.Reader, opts ...Option) (*Result, error) {
	return NewDecoder(r, opts...).Decode()
}

// DecodeFile opens and decodes the capture at path.
func DecodeFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

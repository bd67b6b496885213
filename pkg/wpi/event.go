package wpi

import "encoding/binary"

// Event is the semantic result of decoding one block. The set of
// implementations is closed; consumers switch over the concrete types.
type Event interface {
	event()
}

// StrokeStart begins a new stroke.
type StrokeStart struct{}

// StrokeLayer marks a new layer. It also begins a new stroke.
type StrokeLayer struct {
	// Code is the raw stroke-control byte.
	Code byte
}

// StrokeEnd completes the current stroke.
type StrokeEnd struct{}

// PointObserved carries one normalized pen position.
type PointObserved struct {
	Point Point
	RawX  int16
	RawY  int16
}

// PointDropped reports a point that was discarded because no stroke was in
// progress. The decoder emits it under IdlePointsDrop; DecodeBlock never
// returns it.
type PointDropped struct {
	Point Point
	RawX  int16
	RawY  int16
}

// PressureObserved carries a raw pen pressure reading.
type PressureObserved struct {
	Pressure int16
}

// TiltObserved carries raw pen tilt readings.
type TiltObserved struct {
	X uint8
	Y uint8
}

// Skipped reports a reserved block whose payload was discarded.
type Skipped struct {
	Descriptor Descriptor
	Length     int
}

func (StrokeStart) event()      {}
func (StrokeLayer) event()      {}
func (StrokeEnd) event()        {}
func (PointObserved) event()    {}
func (PointDropped) event()     {}
func (PressureObserved) event() {}
func (TiltObserved) event()     {}
func (Skipped) event()          {}

// Stroke-control sub-types.
const (
	strokeCodeEnd   = 0
	strokeCodeStart = 1
)

const samplePayloadSize = 4

// DecodeBlock turns a block into its event.
func DecodeBlock(b Block) (Event, error) {
	switch b.Descriptor {
	case DescStroke:
		if len(b.Payload) < 1 {
			return nil, payloadError(b)
		}
		switch code := b.Payload[0]; code {
		case strokeCodeEnd:
			return StrokeEnd{}, nil
		case strokeCodeStart:
			return StrokeStart{}, nil
		default:
			return StrokeLayer{Code: code}, nil
		}

	case DescPenXY:
		if len(b.Payload) != samplePayloadSize {
			return nil, payloadError(b)
		}
		x := int16(binary.BigEndian.Uint16(b.Payload[0:2]))
		y := int16(binary.BigEndian.Uint16(b.Payload[2:4]))
		return PointObserved{Point: Transform(x, y), RawX: x, RawY: y}, nil

	case DescPenPressure:
		if len(b.Payload) != samplePayloadSize {
			return nil, payloadError(b)
		}
		// first two bytes are unused
		return PressureObserved{Pressure: int16(binary.BigEndian.Uint16(b.Payload[2:4]))}, nil

	case DescPenTilt:
		if len(b.Payload) != samplePayloadSize {
			return nil, payloadError(b)
		}
		return TiltObserved{X: b.Payload[0], Y: b.Payload[1]}, nil

	case DescReserved194, DescReserved197, DescReserved199:
		return Skipped{Descriptor: b.Descriptor, Length: len(b.Payload)}, nil

	default:
		return nil, &DecodeError{Offset: b.Offset, Descriptor: b.Descriptor, Value: int(b.Descriptor), Err: ErrUnknownDescriptor}
	}
}

func payloadError(b Block) error {
	return &DecodeError{Offset: b.Offset, Descriptor: b.Descriptor, Value: len(b.Payload), Err: ErrPayloadSize}
}

package wpi

import "strconv"

// HeaderSize is the length of the undocumented header preceding the block stream.
const HeaderSize = 2059

// Descriptor identifies the type of a block.
type Descriptor byte

// Known block descriptors.
const (
	DescStroke      Descriptor = 241
	DescPenXY       Descriptor = 97
	DescPenPressure Descriptor = 100
	DescPenTilt     Descriptor = 101

	// Present in real captures, semantics undocumented. Payloads are skipped.
	DescReserved194 Descriptor = 194
	DescReserved197 Descriptor = 197
	DescReserved199 Descriptor = 199
)

// Known reports whether d belongs to the fixed descriptor vocabulary.
func (d Descriptor) Known() bool {
	switch d {
	case DescStroke, DescPenXY, DescPenPressure, DescPenTilt,
		DescReserved194, DescReserved197, DescReserved199:
		return true
	}
	return false
}

// String returns a short name for the descriptor.
func (d Descriptor) String() string {
	switch d {
	case DescStroke:
		return "stroke"
	case DescPenXY:
		return "pen-xy"
	case DescPenPressure:
		return "pen-pressure"
	case DescPenTilt:
		return "pen-tilt"
	case DescReserved194, DescReserved197, DescReserved199:
		return "reserved-" + strconv.Itoa(int(d))
	default:
		return "unknown-" + strconv.Itoa(int(d))
	}
}

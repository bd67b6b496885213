package wpi

import (
	"errors"
	"fmt"
)

// Decode errors. All of them are fatal to the pass and are returned wrapped in
// a *DecodeError carrying the stream offset.
var (
	// ErrUnknownDescriptor is returned for a descriptor byte outside the known set.
	ErrUnknownDescriptor = errors.New("wpi: unknown block descriptor")

	// ErrTruncated is returned when the stream ends inside the header or a block.
	ErrTruncated = errors.New("wpi: truncated stream")

	// ErrMalformedLength is returned when a declared block length is below 2.
	ErrMalformedLength = errors.New("wpi: malformed block length")

	// ErrPayloadSize is returned when a payload is too short for its block type.
	ErrPayloadSize = errors.New("wpi: unexpected payload size")
)

// DecodeError describes where and why decoding stopped.
type DecodeError struct {
	// Offset is the byte offset of the offending descriptor, length byte or
	// payload, counted from the start of the file.
	Offset int64

	// Descriptor is the descriptor of the block being read, if one was read.
	Descriptor Descriptor

	// Value is the offending value: the descriptor byte, the declared length,
	// the payload size, or the number of bytes that were missing.
	Value int

	Err error
}

func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownDescriptor):
		return fmt.Sprintf("%v: %d at offset %d (0x%x)", e.Err, e.Value, e.Offset, e.Offset)
	case errors.Is(e.Err, ErrTruncated):
		return fmt.Sprintf("%v: %d bytes missing at offset %d (0x%x)", e.Err, e.Value, e.Offset, e.Offset)
	default:
		return fmt.Sprintf("%v: %s block value %d at offset %d (0x%x)", e.Err, e.Descriptor, e.Value, e.Offset, e.Offset)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

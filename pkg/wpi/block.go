package wpi

import (
	"errors"
	"io"
)

// Block is one raw record of the stream.
type Block struct {
	// Offset of the descriptor byte.
	Offset     int64
	Descriptor Descriptor
	// Length is the declared length byte; the payload is Length-2 bytes.
	Length  int
	Payload []byte
}

// BlockReader splits a cursor into blocks.
type BlockReader struct {
	c *Cursor
}

// NewBlockReader creates a BlockReader over c. The header must already be skipped.
func NewBlockReader(c *Cursor) *BlockReader {
	return &BlockReader{c: c}
}

// Next reads the next block. It returns io.EOF when the stream ends exactly
// at a block boundary. Every other failure is a *DecodeError and is fatal.
func (r *BlockReader) Next() (Block, error) {
	offset := r.c.Position()
	b, err := r.c.ReadByte()
	if err != nil {
		return Block{}, err
	}

	desc := Descriptor(b)
	if !desc.Known() {
		return Block{}, &DecodeError{Offset: offset, Descriptor: desc, Value: int(b), Err: ErrUnknownDescriptor}
	}

	lb, err := r.c.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Block{}, &DecodeError{Offset: r.c.Position(), Descriptor: desc, Value: 1, Err: ErrTruncated}
		}
		return Block{}, err
	}

	size := int(lb) - 2
	if size < 0 {
		return Block{}, &DecodeError{Offset: offset + 1, Descriptor: desc, Value: int(lb), Err: ErrMalformedLength}
	}

	payload, err := r.c.ReadFull(size)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Descriptor = desc
		}
		return Block{}, err
	}

	return Block{
		Offset:     offset,
		Descriptor: desc,
		Length:     int(lb),
		Payload:    payload,
	}, nil
}

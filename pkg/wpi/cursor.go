package wpi

import (
	"bufio"
	"errors"
	"io"
)

// Cursor is a forward-only reader over a capture stream that tracks its
// absolute byte offset.
type Cursor struct {
	r       *bufio.Reader
	pos     int64
	skipped bool
}

// NewCursor wraps r. The cursor starts at offset 0.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: bufio.NewReaderSize(r, 64*1024)}
}

// SkipHeader discards the opaque header. It must be called exactly once,
// before any other read.
func (c *Cursor) SkipHeader() error {
	if c.skipped || c.pos != 0 {
		return errors.New("wpi: header already consumed")
	}
	c.skipped = true
	n, err := c.r.Discard(HeaderSize)
	c.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &DecodeError{Offset: c.pos, Value: HeaderSize - n, Err: ErrTruncated}
		}
		return err
	}
	return nil
}

// ReadByte returns the next byte, or io.EOF when the stream is exhausted.
// Whether io.EOF is a clean end depends on where the caller is in a block.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}
	c.pos++
	return b, nil
}

// ReadFull returns exactly n bytes. A short read is reported as ErrTruncated.
func (c *Cursor) ReadFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(c.r, buf)
	start := c.pos
	c.pos += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &DecodeError{Offset: start, Value: n - got, Err: ErrTruncated}
		}
		return nil, err
	}
	return buf, nil
}

// Position returns the offset of the next unread byte.
func (c *Cursor) Position() int64 {
	return c.pos
}

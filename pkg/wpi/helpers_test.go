package wpi

import (
	"bytes"
	"encoding/binary"
)

// capture builds a stream: a zeroed header followed by the given blocks.
type capture struct {
	buf bytes.Buffer
}

func newCapture() *capture {
	c := &capture{}
	c.buf.Write(make([]byte, HeaderSize))
	return c
}

func (c *capture) block(d Descriptor, payload ...byte) *capture {
	c.buf.WriteByte(byte(d))
	c.buf.WriteByte(byte(len(payload) + 2))
	c.buf.Write(payload)
	return c
}

func (c *capture) raw(b ...byte) *capture {
	c.buf.Write(b)
	return c
}

func (c *capture) start() *capture { return c.block(DescStroke, 1) }
func (c *capture) end() *capture   { return c.block(DescStroke, 0) }
func (c *capture) layer() *capture { return c.block(DescStroke, 2) }

func (c *capture) xy(x, y int16) *capture {
	p := make([]byte, 4)
	binary.BigEndian.PutUint16(p[0:2], uint16(x))
	binary.BigEndian.PutUint16(p[2:4], uint16(y))
	return c.block(DescPenXY, p...)
}

func (c *capture) pressure(v int16) *capture {
	p := []byte{0xAA, 0xBB, 0, 0}
	binary.BigEndian.PutUint16(p[2:4], uint16(v))
	return c.block(DescPenPressure, p...)
}

func (c *capture) tilt(x, y uint8) *capture {
	return c.block(DescPenTilt, x, y, 0, 0)
}

func (c *capture) len() int64 {
	return int64(c.buf.Len())
}

func (c *capture) reader() *bytes.Reader {
	return bytes.NewReader(c.buf.Bytes())
}

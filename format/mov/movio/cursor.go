package movio

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Cursor reads big-endian primitives from an in-memory buffer. Every read is
// bounds-checked up front, so a failed read never consumes bytes.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) Len() int { return len(c.data) }

// Remaining is zero when the position sits outside the buffer.
func (c *Cursor) Remaining() int {
	if c.pos < 0 || c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

func (c *Cursor) check(op string, need int) error {
	if have := c.Remaining(); have < need {
		return &BoundsError{Op: op, Need: need, Have: have}
	}
	return nil
}

// Move shifts the position by delta. Targets below zero or past the end of the
// buffer are rejected and leave the position untouched.
func (c *Cursor) Move(delta int) error {
	next := c.pos + delta
	if next < 0 || next > len(c.data) {
		return &PositionError{Pos: next, Size: len(c.data)}
	}
	c.pos = next
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.check("ReadU8", 1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.check("ReadU16", 2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.check("ReadU32", 4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadFlags reads the 24-bit flags field of a full atom.
func (c *Cursor) ReadFlags() (uint32, error) {
	if err := c.check("ReadFlags", 3); err != nil {
		return 0, err
	}
	b := c.data[c.pos:]
	v := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	c.pos += 3
	return v, nil
}

// ReadFixed16 returns the 16-bit value as a fraction of its maximum.
func (c *Cursor) ReadFixed16() (float64, error) {
	v, err := c.ReadU16()
	if err != nil {
		return 0, err
	}
	return float64(v) / math.MaxUint16, nil
}

// ReadFixed32 returns the 32-bit value as a fraction of its maximum.
func (c *Cursor) ReadFixed32() (float64, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return float64(v) / math.MaxUint32, nil
}

func (c *Cursor) ReadTag() (Tag, error) {
	if err := c.check("ReadTag", 4); err != nil {
		return 0, err
	}
	b := c.data[c.pos : c.pos+4]
	if !utf8.Valid(b) {
		tagErr := &TagError{Offset: c.pos}
		copy(tagErr.Raw[:], b)
		return 0, tagErr
	}
	c.pos += 4
	return Tag(binary.BigEndian.Uint32(b)), nil
}

// ReadHeader reads the (size, tag) pair that opens every atom.
func (c *Cursor) ReadHeader() (size uint32, tag Tag, err error) {
	if size, err = c.ReadU32(); err != nil {
		return
	}
	if tag, err = c.ReadTag(); err != nil {
		return
	}
	return
}

// ViewAt moves the cursor to offset and returns a view that puts the previous
// position back on Close.
func (c *Cursor) ViewAt(offset int) *View {
	v := &View{Cursor: c, restore: c.pos}
	c.pos = offset
	return v
}

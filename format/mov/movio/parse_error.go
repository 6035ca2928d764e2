package movio

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds     = errors.New("movio: out of bounds")
	ErrInvalidPosition = errors.New("movio: invalid position")
	ErrInvalidTag      = errors.New("movio: invalid tag")
	ErrRootNotFound    = errors.New("movio: root atom not found")
)

// BoundsError is returned when fewer bytes remain than a read requires.
type BoundsError struct {
	Op   string
	Need int
	Have int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: not enough bytes: need %d have %d", e.Op, e.Need, e.Have)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// PositionError is returned by Move when the target lies outside the buffer.
type PositionError struct {
	Pos  int
	Size int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("new cursor position %d outside buffer of size %d", e.Pos, e.Size)
}

func (e *PositionError) Is(target error) bool {
	return target == ErrInvalidPosition || target == ErrOutOfBounds
}

type TagError struct {
	Offset int
	Raw    [4]byte
}

func (e *TagError) Error() string {
	return fmt.Sprintf("tag at %d is not valid utf-8: % x", e.Offset, e.Raw[:])
}

func (e *TagError) Is(target error) bool {
	return target == ErrInvalidTag
}

// ParseError names the atom whose parser failed. The primitive read error stays
// reachable through Unwrap.
type ParseError struct {
	Tag    Tag
	Offset int
	Err    error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("movio: parse error: %s:%d: %v", p.Tag, p.Offset, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func parseErr(tag Tag, offset int, prev error) error {
	var pe *ParseError
	if errors.As(prev, &pe) {
		return prev
	}
	return &ParseError{Tag: tag, Offset: offset, Err: prev}
}

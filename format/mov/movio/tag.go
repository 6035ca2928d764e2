package movio

import (
	"encoding/binary"
	"time"
)

const HeaderSize = 8

type Tag uint32

func (self Tag) String() string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(self))
	for i := 0; i < 4; i++ {
		if b[i] == 0 {
			b[i] = ' '
		}
	}
	return string(b[:])
}

func StringToTag(tag string) Tag {
	var b [4]byte
	copy(b[:], []byte(tag))
	return Tag(binary.BigEndian.Uint32(b[:]))
}

var epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// GetTime32 converts seconds since midnight, Jan 1, 1904 UTC.
func GetTime32(sec uint32) time.Time {
	return epoch1904.Add(time.Second * time.Duration(sec))
}

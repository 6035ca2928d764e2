package mov

import (
	"github.com/ugparu/movatoms/format/mov/movio"
)

var moovName = []byte("moov")

const sizeFieldLen = 4

// FindMoov returns the offset of the size field of the first "moov" atom, i.e.
// four bytes before the first occurrence of the tag. Occurrences closer than
// four bytes to the start of data have no room for a size field and are passed
// over.
func FindMoov(data []byte) (int, error) {
	m := 0
	for i, c := range data {
		switch {
		case c == moovName[m]:
			m++
		case c == moovName[0]:
			m = 1
		default:
			m = 0
		}
		if m < len(moovName) {
			continue
		}
		if start := i - len(moovName) + 1 - sizeFieldLen; start >= 0 {
			return start, nil
		}
		m = 0
	}
	return 0, movio.ErrRootNotFound
}

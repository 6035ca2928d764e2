package movio

import "slices"

// scanChildren walks the atoms that follow v's position up to end, the end of
// the parent's declared range. It stops at the first header that cannot be
// read, at a tag outside allowed, and after an atom whose size cannot be
// jumped over. Offsets come back last-found first, so pushing them onto a
// stack yields file order when popped.
func scanChildren(v *View, end int, allowed tagSet, tracer Tracer) []int {
	var offsets []int
	for v.Pos()+HeaderSize <= end {
		size, tag, err := v.ReadHeader()
		if err != nil {
			break
		}
		start := v.Pos() - HeaderSize
		if !allowed.has(tag) {
			tracer.Trace(Event{Kind: ScanStop, Tag: tag, Offset: start, Size: int(size)})
			break
		}
		offsets = append(offsets, start)
		if size < HeaderSize {
			break
		}
		if err = v.Move(int(size) - HeaderSize); err != nil {
			break
		}
	}
	slices.Reverse(offsets)
	return offsets
}

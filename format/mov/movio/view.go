package movio

// View is a cursor bound to an absolute offset of its owner's buffer. Reads and
// moves go straight to the owning Cursor; Close puts the owner's position back
// where it was before the view was opened. Always defer Close right after
// ViewAt, so the position is restored on error paths too.
type View struct {
	*Cursor
	restore int
	closed  bool
}

func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.pos = v.restore
}

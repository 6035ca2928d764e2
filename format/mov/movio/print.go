package movio

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func printatom(out io.Writer, root Atom, depth int) {
	offset, size := root.Pos()

	type stringintf interface {
		String() string
	}

	fmt.Fprintf(out,
		"%s%s offset=%d size=%d",
		strings.Repeat(" ", depth*2), root.Tag(), offset, size,
	)
	if str, ok := root.(stringintf); ok {
		fmt.Fprint(out, " ", str.String())
	}
	fmt.Fprintln(out)

	for _, child := range root.Children() {
		printatom(out, child, depth+1)
	}
}

// FprintAtom writes root and its descendants, one atom per line. The
// synthetic MovieAtoms root itself is not printed.
func FprintAtom(out io.Writer, root Atom) {
	if _, ok := root.(*MovieAtoms); ok {
		for _, child := range root.Children() {
			printatom(out, child, 0)
		}
		return
	}
	printatom(out, root, 0)
}

func PrintAtom(root Atom) {
	FprintAtom(os.Stdout, root)
}

func (mvhd MovieHeader) String() string {
	return fmt.Sprintf("version=%d timescale=%d duration=%d next_track_id=%d",
		mvhd.Version, mvhd.TimeScale, mvhd.Duration, mvhd.NextTrackID)
}

func (self TrackHeader) String() string {
	return fmt.Sprintf("track_id=%d duration=%d width=%g height=%g",
		self.TrackId, self.Duration, self.TrackWidth, self.TrackHeight)
}

func (self MediaHeader) String() string {
	return fmt.Sprintf("timescale=%d duration=%d language=%s",
		self.TimeScale, self.Duration, self.LanguageCode())
}

func (hdlr HandlerRefer) String() string {
	return fmt.Sprintf("type=%q subtype=%q", hdlr.ComponentType, hdlr.ComponentSubtype)
}

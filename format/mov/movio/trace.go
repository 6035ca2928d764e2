package movio

import (
	"fmt"

	"github.com/ugparu/movatoms/utils/logger"
)

type EventKind uint8

const (
	// Visit is emitted after an atom's parser succeeded and the record was attached.
	Visit EventKind = iota + 1
	// Skip is emitted for an atom with no registered parser.
	Skip
	// Duplicate is emitted when a parent already holds a singleton of the same tag.
	Duplicate
	// ScanStop is emitted when a child scan ends on a tag outside the parent's schema.
	ScanStop
)

func (k EventKind) String() string {
	switch k {
	case Visit:
		return "visit"
	case Skip:
		return "skip"
	case Duplicate:
		return "duplicate"
	case ScanStop:
		return "scan-stop"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

type Event struct {
	Kind   EventKind
	Tag    Tag
	Offset int
	Size   int
	Depth  int // frames left on the traversal stack
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s offset=%d size=%d depth=%d", e.Kind, e.Tag, e.Offset, e.Size, e.Depth)
}

type Tracer interface {
	Trace(Event)
}

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// LogTracer writes every event to the package logger at trace level.
type LogTracer struct{}

func (LogTracer) String() string { return "movio" }

func (t LogTracer) Trace(e Event) {
	logger.Trace(t, e.String())
}

// Events records every event it receives.
type Events []Event

func (e *Events) Trace(ev Event) {
	*e = append(*e, ev)
}

func (e Events) Kind(kind EventKind) (r []Event) {
	for _, ev := range e {
		if ev.Kind == kind {
			r = append(r, ev)
		}
	}
	return
}

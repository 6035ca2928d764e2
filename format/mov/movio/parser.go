package movio

import (
	"errors"
	"fmt"
)

// errStop ends the traversal without failing it.
var errStop = errors.New("movio: stop traversal")

type frame struct {
	offset int
	parent parent
}

// Parser builds the atom tree of a movie held in memory. It keeps a single
// cursor over data and must not be used from several goroutines at once.
type Parser struct {
	cur    *Cursor
	tracer Tracer
}

// NewParser wraps data. A nil tracer discards events.
func NewParser(data []byte, tracer Tracer) *Parser {
	if tracer == nil {
		tracer = nopTracer{}
	}
	return &Parser{cur: NewCursor(data), tracer: tracer}
}

// Parse walks the tree rooted at the moov atom whose size field sits at
// offset. Children are discovered breadth-wise per parent and visited
// depth-first from an explicit stack. A header that cannot be read inside the
// tree ends the walk quietly; a known atom that fails to parse aborts it and
// no tree is returned.
func (p *Parser) Parse(offset int) (*MovieAtoms, error) {
	root := &MovieAtoms{}

	stack, err := p.visit(frame{offset: offset, parent: root}, nil, true)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if stack, err = p.visit(f, stack, false); err != nil {
			if errors.Is(err, errStop) {
				break
			}
			return nil, err
		}
	}
	return root, nil
}

func (p *Parser) visit(f frame, stack []frame, isRoot bool) ([]frame, error) {
	v := p.cur.ViewAt(f.offset)
	defer v.Close()

	size, tag, err := v.ReadHeader()
	if err != nil {
		if isRoot {
			return stack, err
		}
		return stack, errStop
	}
	if isRoot && !registry[rootTag].children.has(tag) {
		return stack, fmt.Errorf("%w: found %q at %d", ErrRootNotFound, tag.String(), f.offset)
	}

	pos := AtomPos{Offset: f.offset, Size: int(size)}
	ev := Event{Tag: tag, Offset: pos.Offset, Size: pos.Size, Depth: len(stack)}

	entry, ok := registry[tag]
	if !ok || entry.parse == nil {
		ev.Kind = Skip
		p.tracer.Trace(ev)
		return stack, nil
	}

	atom, err := entry.parse(v, pos)
	if err != nil {
		return stack, parseErr(tag, f.offset, err)
	}
	if !f.parent.attach(atom) {
		ev.Kind = Duplicate
		p.tracer.Trace(ev)
		return stack, nil
	}
	ev.Kind = Visit
	p.tracer.Trace(ev)

	container, ok := atom.(parent)
	if !ok || len(entry.children) == 0 {
		return stack, nil
	}
	if err = v.Move(f.offset + HeaderSize - v.Pos()); err != nil {
		return stack, nil
	}
	for _, off := range scanChildren(v, pos.End(), entry.children, p.tracer) {
		stack = append(stack, frame{offset: off, parent: container})
	}
	return stack, nil
}

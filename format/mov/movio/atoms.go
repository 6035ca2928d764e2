package movio

type Atom interface {
	Pos() (int, int)
	Tag() Tag
	Children() []Atom
}

// AtomPos is the absolute offset of an atom's size field and the size it declares.
type AtomPos struct {
	Offset int
	Size   int
}

func (self AtomPos) Pos() (int, int) {
	return self.Offset, self.Size
}

// End is the offset the declared size points past. It is never checked against
// the bytes actually present.
func (self AtomPos) End() int {
	return self.Offset + self.Size
}

// parent is implemented by records that hold child records.
type parent interface {
	Atom
	// attach stores child and reports whether it was kept.
	attach(child Atom) bool
}

func FindChildrenByName(root Atom, tag string) Atom {
	return FindChildren(root, StringToTag(tag))
}

func FindChildren(root Atom, tag Tag) Atom {
	if root.Tag() == tag {
		return root
	}
	for _, child := range root.Children() {
		if r := FindChildren(child, tag); r != nil {
			return r
		}
	}
	return nil
}

package movio

const (
	MOOV = Tag(0x6d6f6f76)
	IODS = Tag(0x696f6473)
	UDTA = Tag(0x75647461)
)

// MovieAtoms is the synthetic root of a parsed file.
type MovieAtoms struct {
	Movie *Movie
}

func (self MovieAtoms) Pos() (int, int) {
	return 0, 0
}

func (self MovieAtoms) Tag() Tag {
	return 0
}

func (self MovieAtoms) Children() (r []Atom) {
	if self.Movie != nil {
		r = append(r, self.Movie)
	}
	return
}

func (self *MovieAtoms) attach(child Atom) bool {
	if moov, ok := child.(*Movie); ok && self.Movie == nil {
		self.Movie = moov
		return true
	}
	return false
}

type Movie struct {
	Header *MovieHeader
	Tracks []*Track
	AtomPos
}

func (self Movie) Tag() Tag {
	return MOOV
}

func (self Movie) Children() (r []Atom) {
	if self.Header != nil {
		r = append(r, self.Header)
	}
	for _, atom := range self.Tracks {
		r = append(r, atom)
	}
	return
}

func (self *Movie) attach(child Atom) bool {
	switch atom := child.(type) {
	case *MovieHeader:
		if self.Header == nil {
			self.Header = atom
			return true
		}
	case *Track:
		self.Tracks = append(self.Tracks, atom)
		return true
	}
	return false
}

func parseMovie(_ *View, pos AtomPos) (Atom, error) {
	return &Movie{AtomPos: pos}, nil
}

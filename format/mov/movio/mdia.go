package movio

const (
	MDIA = Tag(0x6d646961)
	ELNG = Tag(0x656c6e67)
	MINF = Tag(0x6d696e66)
)

type Media struct {
	Header  *MediaHeader
	Handler *HandlerRefer
	AtomPos
}

func (self Media) Tag() Tag {
	return MDIA
}

func (self Media) Children() (r []Atom) {
	if self.Header != nil {
		r = append(r, self.Header)
	}
	if self.Handler != nil {
		r = append(r, self.Handler)
	}
	return
}

func (self *Media) attach(child Atom) bool {
	switch atom := child.(type) {
	case *MediaHeader:
		if self.Header == nil {
			self.Header = atom
			return true
		}
	case *HandlerRefer:
		if self.Handler == nil {
			self.Handler = atom
			return true
		}
	}
	return false
}

func parseMedia(_ *View, pos AtomPos) (Atom, error) {
	return &Media{AtomPos: pos}, nil
}

package movio

const (
	TRAK = Tag(0x7472616b)
	TAPT = Tag(0x74617074)
	CLIP = Tag(0x636c6970)
	MATT = Tag(0x6d617474)
	EDTS = Tag(0x65647473)
	TREF = Tag(0x74726566)
	TXAS = Tag(0x74786173)
	LOAD = Tag(0x6c6f6164)
	IMAP = Tag(0x696d6170)
)

type Track struct {
	Header *TrackHeader
	Media  *Media
	AtomPos
}

func (self Track) Tag() Tag {
	return TRAK
}

func (self Track) Children() (r []Atom) {
	if self.Header != nil {
		r = append(r, self.Header)
	}
	if self.Media != nil {
		r = append(r, self.Media)
	}
	return
}

func (self *Track) attach(child Atom) bool {
	switch atom := child.(type) {
	case *TrackHeader:
		if self.Header == nil {
			self.Header = atom
			return true
		}
	case *Media:
		if self.Media == nil {
			self.Media = atom
			return true
		}
	}
	return false
}

func parseTrack(_ *View, pos AtomPos) (Atom, error) {
	return &Track{AtomPos: pos}, nil
}

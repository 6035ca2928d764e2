package movio

import "slices"

type tagSet map[Tag]struct{}

func newTagSet(tags ...Tag) tagSet {
	s := make(tagSet, len(tags))
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
	return s
}

func (s tagSet) has(tag Tag) bool {
	_, ok := s[tag]
	return ok
}

// parseFunc reads the payload of an atom whose header has already been consumed.
type parseFunc func(v *View, pos AtomPos) (Atom, error)

type atomType struct {
	children tagSet
	parse    parseFunc
}

// rootTag keys the synthetic MovieAtoms entry.
const rootTag = Tag(0)

// registry maps every recognized tag to its permitted children and its parser.
// Tags that are only listed as children are skipped during traversal; tags with
// no entry have no children.
var registry = map[Tag]atomType{
	rootTag: {children: newTagSet(MOOV)},
	MOOV: {
		children: newTagSet(MVHD, IODS, TRAK, UDTA),
		parse:    parseMovie,
	},
	MVHD: {parse: parseMovieHeader},
	TRAK: {
		children: newTagSet(TKHD, TAPT, CLIP, MATT, EDTS, TREF, TXAS, LOAD, IMAP, MDIA, UDTA),
		parse:    parseTrack,
	},
	TKHD: {parse: parseTrackHeader},
	MDIA: {
		children: newTagSet(MDHD, ELNG, HDLR, MINF, UDTA),
		parse:    parseMedia,
	},
	MDHD: {parse: parseMediaHeader},
	HDLR: {parse: parseHandlerRefer},
}

// AllowedChildren returns the tags tag may hold as immediate children.
func AllowedChildren(tag Tag) []Tag {
	entry := registry[tag]
	r := make([]Tag, 0, len(entry.children))
	for child := range entry.children {
		r = append(r, child)
	}
	slices.Sort(r)
	return r
}

package movio

import "time"

const (
	TKHD = Tag(0x746b6864)
)

type TrackHeader struct {
	Version        uint8
	Flags          uint32
	CreateTime     uint32
	ModifyTime     uint32
	TrackId        uint32
	Duration       uint32
	Layer          uint16
	AlternateGroup uint16
	Volume         float64
	TrackWidth     float64
	TrackHeight    float64
	AtomPos
}

func (self TrackHeader) Tag() Tag {
	return TKHD
}

func (self TrackHeader) Children() (r []Atom) {
	return
}

func (self TrackHeader) CreationTime() time.Time {
	return GetTime32(self.CreateTime)
}

func (self TrackHeader) ModificationTime() time.Time {
	return GetTime32(self.ModifyTime)
}

// Enabled reports the track_enabled flag.
func (self TrackHeader) Enabled() bool {
	return self.Flags&0x000001 != 0
}

func parseTrackHeader(v *View, pos AtomPos) (_ Atom, err error) {
	self := &TrackHeader{AtomPos: pos}
	if self.Version, err = v.ReadU8(); err != nil {
		return
	}
	if self.Flags, err = v.ReadFlags(); err != nil {
		return
	}
	if self.CreateTime, err = v.ReadU32(); err != nil {
		return
	}
	if self.ModifyTime, err = v.ReadU32(); err != nil {
		return
	}
	if self.TrackId, err = v.ReadU32(); err != nil {
		return
	}
	if err = v.Move(4); err != nil {
		return
	}
	if self.Duration, err = v.ReadU32(); err != nil {
		return
	}
	if err = v.Move(8); err != nil {
		return
	}
	if self.Layer, err = v.ReadU16(); err != nil {
		return
	}
	if self.AlternateGroup, err = v.ReadU16(); err != nil {
		return
	}
	if self.Volume, err = v.ReadFixed16(); err != nil {
		return
	}
	if err = v.Move(2); err != nil {
		return
	}
	if err = v.Move(matrixSize); err != nil {
		return
	}
	if self.TrackWidth, err = v.ReadFixed32(); err != nil {
		return
	}
	if self.TrackHeight, err = v.ReadFixed32(); err != nil {
		return
	}
	return self, nil
}

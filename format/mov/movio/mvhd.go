package movio

import "time"

const (
	MVHD       = Tag(0x6d766864)
	matrixSize = 36
)

type MovieHeader struct {
	Version           uint8
	Flags             uint32 // 3 bytes
	CreateTime        uint32 // seconds since midnight, Jan 1, 1904, in UTC
	ModifyTime        uint32
	TimeScale         uint32 // time units per second
	Duration          uint32 // in time scale units
	PreferredRate     float64
	PreferredVolume   float64
	PreviewTime       uint32
	PreviewDuration   uint32
	PosterTime        uint32
	SelectionTime     uint32
	SelectionDuration uint32
	CurrentTime       uint32
	NextTrackID       uint32
	AtomPos
}

func (mvhd MovieHeader) Tag() Tag {
	return MVHD
}

func (mvhd MovieHeader) Children() (r []Atom) {
	return
}

func (mvhd MovieHeader) CreationTime() time.Time {
	return GetTime32(mvhd.CreateTime)
}

func (mvhd MovieHeader) ModificationTime() time.Time {
	return GetTime32(mvhd.ModifyTime)
}

// DurationTime is zero when the time scale is unset.
func (mvhd MovieHeader) DurationTime() time.Duration {
	if mvhd.TimeScale == 0 {
		return 0
	}
	return time.Duration(mvhd.Duration) * time.Second / time.Duration(mvhd.TimeScale)
}

func parseMovieHeader(v *View, pos AtomPos) (_ Atom, err error) {
	mvhd := &MovieHeader{AtomPos: pos}
	if mvhd.Version, err = v.ReadU8(); err != nil {
		return
	}
	if mvhd.Flags, err = v.ReadFlags(); err != nil {
		return
	}
	if mvhd.CreateTime, err = v.ReadU32(); err != nil {
		return
	}
	if mvhd.ModifyTime, err = v.ReadU32(); err != nil {
		return
	}
	if mvhd.TimeScale, err = v.ReadU32(); err != nil {
		return
	}
	if mvhd.Duration, err = v.ReadU32(); err != nil {
		return
	}
	if mvhd.PreferredRate, err = v.ReadFixed32(); err != nil {
		return
	}
	if mvhd.PreferredVolume, err = v.ReadFixed16(); err != nil {
		return
	}
	// reserved
	if err = v.Move(10); err != nil {
		return
	}
	if err = v.Move(matrixSize); err != nil {
		return
	}
	for _, field := range []*uint32{
		&mvhd.PreviewTime,
		&mvhd.PreviewDuration,
		&mvhd.PosterTime,
		&mvhd.SelectionTime,
		&mvhd.SelectionDuration,
		&mvhd.CurrentTime,
		&mvhd.NextTrackID,
	} {
		if *field, err = v.ReadU32(); err != nil {
			return
		}
	}
	return mvhd, nil
}

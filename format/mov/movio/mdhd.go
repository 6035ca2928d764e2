package movio

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

const (
	MDHD = Tag(0x6d646864)

	// language codes below this value are Macintosh codes, the rest are packed ISO-639-2/T
	macLanguageLimit = 0x400
	unspecifiedLang  = 0x7fff
)

// Macintosh language codes as listed in the QuickTime file format.
var macLanguages = []string{
	"en", "fr", "de", "it", "nl", "sv", "es", "da", "pt", "no",
	"he", "ja", "ar", "fi", "el", "is", "mt", "tr", "hr", "zh-Hant",
	"ur", "hi", "th", "ko",
}

type MediaHeader struct {
	Version    uint8
	Flags      uint32
	CreateTime uint32
	ModifyTime uint32
	TimeScale  uint32
	Duration   uint32
	Language   uint16
	Quality    uint16
	AtomPos
}

func (self MediaHeader) Tag() Tag {
	return MDHD
}

func (self MediaHeader) Children() (r []Atom) {
	return
}

func (self MediaHeader) CreationTime() time.Time {
	return GetTime32(self.CreateTime)
}

func (self MediaHeader) ModificationTime() time.Time {
	return GetTime32(self.ModifyTime)
}

// LanguageCode returns the three-letter ISO-639-2/T code, "und" when unset, or
// "mac:<n>" for a Macintosh language code.
func (self MediaHeader) LanguageCode() string {
	switch {
	case self.Language == unspecifiedLang:
		return "und"
	case self.Language < macLanguageLimit:
		return fmt.Sprintf("mac:%d", self.Language)
	}
	b := []byte{
		byte(self.Language>>10&0x1f) + 0x60,
		byte(self.Language>>5&0x1f) + 0x60,
		byte(self.Language&0x1f) + 0x60,
	}
	return string(b)
}

func (self MediaHeader) LanguageTag() (language.Tag, error) {
	switch {
	case self.Language == unspecifiedLang:
		return language.Und, nil
	case self.Language < macLanguageLimit:
		if int(self.Language) >= len(macLanguages) {
			return language.Und, fmt.Errorf("movio: unknown macintosh language code %d", self.Language)
		}
		return language.Parse(macLanguages[self.Language])
	}
	return language.Parse(self.LanguageCode())
}

func parseMediaHeader(v *View, pos AtomPos) (_ Atom, err error) {
	self := &MediaHeader{AtomPos: pos}
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
	if self.TimeScale, err = v.ReadU32(); err != nil {
		return
	}
	if self.Duration, err = v.ReadU32(); err != nil {
		return
	}
	if self.Language, err = v.ReadU16(); err != nil {
		return
	}
	if self.Quality, err = v.ReadU16(); err != nil {
		return
	}
	return self, nil
}

// Package mov locates and parses the movie atom of QuickTime and MP4 files.
package mov

import (
	"github.com/ugparu/movatoms/format/mov/movio"
	"github.com/ugparu/movatoms/utils/logger"
)

// Probe finds the moov atom in data and parses the tree below it.
func Probe(data []byte, tracer movio.Tracer) (*movio.MovieAtoms, error) {
	offset, err := FindMoov(data)
	if err != nil {
		return nil, err
	}
	logger.Debugf(pkgName, "found moov atom at %d", offset)
	return movio.NewParser(data, tracer).Parse(offset)
}

// ProbeFile loads path and parses its movie atom. A negative moovOffset
// searches the file for the atom; otherwise the atom is expected there.
func ProbeFile(path string, moovOffset int, tracer movio.Tracer) (*movio.MovieAtoms, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf(pkgName, "loaded %s: %d bytes", path, len(data))
	if moovOffset < 0 {
		return Probe(data, tracer)
	}
	return movio.NewParser(data, tracer).Parse(moovOffset)
}

const pkgName = "mov"

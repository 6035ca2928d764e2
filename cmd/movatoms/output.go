package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ugparu/movatoms/format/mov/movio"
	"gopkg.in/yaml.v3"
)

type node struct {
	Tag      string  `json:"tag" yaml:"tag"`
	Offset   int     `json:"offset" yaml:"offset"`
	Size     int     `json:"size" yaml:"size"`
	Info     string  `json:"info,omitempty" yaml:"info,omitempty"`
	Children []*node `json:"children,omitempty" yaml:"children,omitempty"`
}

func toNodes(atom movio.Atom) (r []*node) {
	for _, child := range atom.Children() {
		offset, size := child.Pos()
		n := &node{Tag: child.Tag().String(), Offset: offset, Size: size}
		if s, ok := child.(fmt.Stringer); ok {
			n.Info = s.String()
		}
		n.Children = toNodes(child)
		r = append(r, n)
	}
	return
}

func render(w io.Writer, format string, atoms *movio.MovieAtoms) error {
	switch format {
	case "text":
		movio.FprintAtom(w, atoms)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toNodes(atoms)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toNodes(atoms))
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Command movatoms prints the movie atom tree of a QuickTime or MP4 file.
//
//	movatoms [-moov offset] [-format text|yaml|json] [-log-level level] [-trace] file
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ugparu/movatoms/format/mov"
	"github.com/ugparu/movatoms/format/mov/movio"
	"github.com/ugparu/movatoms/utils/logger"
)

const cmdName = "movatoms"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("movatoms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	moov := fs.Int("moov", -1, "offset of the moov atom; searched for when negative")
	format := fs.String("format", "text", "output format: text, yaml or json")
	level := fs.String("log-level", "info", "log level")
	trace := fs.Bool("trace", false, "log every atom visited (needs -log-level trace)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: movatoms [flags] file")
		fs.PrintDefaults()
		return 2
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger.SetOutput(stderr)
	logger.Init(lvl)
	defer logger.Close()

	var tracer movio.Tracer
	if *trace {
		tracer = movio.LogTracer{}
	}

	atoms, err := mov.ProbeFile(fs.Arg(0), *moov, tracer)
	if err != nil {
		logger.Errorf(cmdName, "%s: %v", fs.Arg(0), err)
		return 1
	}
	if atoms.Movie != nil {
		logger.Infof(cmdName, "%s: moov at %d with %d tracks", fs.Arg(0), atoms.Movie.Offset, len(atoms.Movie.Tracks))
	}
	if err = render(stdout, *format, atoms); err != nil {
		logger.Errorf(cmdName, "%v", err)
		return 1
	}
	return 0
}

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeMovie(t *testing.T) string {
	t.Helper()
	mvhd := make([]byte, 108)
	binary.BigEndian.PutUint32(mvhd, 108)
	copy(mvhd[4:], "mvhd")
	binary.BigEndian.PutUint32(mvhd[20:], 600)
	moov := binary.BigEndian.AppendUint32(nil, uint32(8+len(mvhd)))
	moov = append(moov, "moov"...)
	moov = append(moov, mvhd...)

	path := filepath.Join(t.TempDir(), "in.mov")
	require.NoError(t, os.WriteFile(path, append([]byte("\x00\x00\x00\x08free"), moov...), 0o600))
	return path
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{writeMovie(t)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "moov offset=8 size=116")
	require.Contains(t, stdout.String(), "  mvhd offset=16 size=108 version=0 timescale=600")
}

func TestRunStructured(t *testing.T) {
	path := writeMovie(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-format", "json", path}, &stdout, &stderr), stderr.String())
	var nodes []node
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	require.Equal(t, "moov", nodes[0].Tag)
	require.Equal(t, "mvhd", nodes[0].Children[0].Tag)

	stdout.Reset()
	require.Equal(t, 0, run([]string{"-format", "yaml", "-moov", "8", path}, &stdout, &stderr), stderr.String())
	nodes = nil
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &nodes))
	require.Equal(t, 16, nodes[0].Children[0].Offset)
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(nil, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-log-level", "loud", "x"}, &stdout, &stderr))
	require.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.mov")}, &stdout, &stderr))
	require.Equal(t, 1, run([]string{"-format", "xml", writeMovie(t)}, &stdout, &stderr))
}

func TestRunTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-trace", "-log-level", "trace", writeMovie(t)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stderr.String(), "visit moov offset=8")
	require.Contains(t, stderr.String(), "visit mvhd offset=16")
	require.Contains(t, stderr.String(), "loaded ")
	require.Contains(t, stderr.String(), "moov at 8 with 0 tracks")
}

package movio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, data []byte, end int, allowed tagSet) ([]int, Events) {
	t.Helper()
	var events Events
	c := NewCursor(data)
	v := c.ViewAt(HeaderSize)
	defer v.Close()
	return scanChildren(v, end, allowed, &events), events
}

func TestScanChildrenReverseOrder(t *testing.T) {
	t.Parallel()

	data := atom("trak",
		atom("tkhd", tkhdPayload(1, 0, 0, 0)),
		atom("edts", make([]byte, 4)),
		atom("mdia"),
	)
	offsets, events := scan(t, data, len(data), registry[TRAK].children)

	require.Equal(t, []int{8 + 92 + 12, 8 + 92, 8}, offsets)
	require.Empty(t, events)
}

func TestScanChildrenOnlyAllowedTags(t *testing.T) {
	t.Parallel()

	data := atom("moov",
		atom("mvhd", mvhdPayload(0, 600, 0, 1)),
		atom("free", make([]byte, 8)),
		atom("trak"),
	)
	offsets, events := scan(t, data, len(data), registry[MOOV].children)

	require.Equal(t, []int{8}, offsets, "scan ends at the first disallowed tag")
	require.Len(t, events, 1)
	require.Equal(t, ScanStop, events[0].Kind)
	require.Equal(t, StringToTag("free"), events[0].Tag)
	require.Equal(t, 8+108, events[0].Offset)
}

func TestScanChildrenNoOverlap(t *testing.T) {
	t.Parallel()

	// Sizes are trusted: a declared size larger than the real atom swallows the next one.
	body := append(sized(28, "udta", make([]byte, 4)), atom("udta", make([]byte, 8))...)
	body = append(body, atom("trak")...)
	data := atom("moov", body)

	offsets, _ := scan(t, data, len(data), registry[MOOV].children)

	require.Equal(t, []int{8 + 28, 8}, offsets)
	for i := 1; i < len(offsets); i++ {
		require.Less(t, offsets[i], offsets[i-1])
	}
}

func TestScanChildrenBoundedByParent(t *testing.T) {
	t.Parallel()

	trak := atom("trak", atom("tkhd", tkhdPayload(1, 0, 0, 0)))
	data := append(trak, atom("udta")...)

	offsets, _ := scan(t, data, len(trak), registry[TRAK].children)
	require.Equal(t, []int{8}, offsets, "udta past the end of trak belongs to another parent")
}

func TestScanChildrenStopConditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
		want []int
	}{
		{
			name: "empty",
			body: nil,
			want: nil,
		},
		{
			name: "truncated_header",
			body: []byte{0, 0, 0, 8, 'm'},
			want: nil,
		},
		{
			name: "invalid_tag",
			body: []byte{0, 0, 0, 8, 0xff, 0xff, 0xff, 0xff},
			want: nil,
		},
		{
			name: "size_below_header",
			body: append(sized(0, "mvhd", nil), atom("trak")...),
			want: []int{8},
		},
		{
			name: "size_past_buffer",
			body: append(atom("trak"), sized(4096, "trak", nil)...),
			want: []int{16, 8},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := append(sized(uint32(HeaderSize+len(tt.body)), "moov", nil), tt.body...)
			offsets, _ := scan(t, data, len(data)+32, registry[MOOV].children)
			require.Equal(t, tt.want, offsets)
		})
	}
}

func TestScanChildrenLeavesCursorRestored(t *testing.T) {
	t.Parallel()

	data := atom("mdia", atom("mdhd", mdhdPayload(1, 1, 0)), atom("hdlr", hdlrPayload("mhlr", "vide")))
	c := NewCursor(bytes.Clone(data))
	func() {
		v := c.ViewAt(HeaderSize)
		defer v.Close()
		require.Len(t, scanChildren(v, len(data), registry[MDIA].children, nopTracer{}), 2)
	}()
	require.Zero(t, c.Pos())
}

func TestParseIgnoresAtomsPastDeclaredParentEnd(t *testing.T) {
	t.Parallel()

	data := append(sized(8, "moov", nil), atom("mvhd", mvhdPayload(0, 600, 0, 1))...)

	atoms, err := NewParser(data, nil).Parse(0)
	require.NoError(t, err)
	require.NotNil(t, atoms.Movie)
	require.Nil(t, atoms.Movie.Header, "mvhd lies outside the 8 bytes moov declares")
}

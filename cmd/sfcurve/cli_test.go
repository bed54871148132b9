package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/forestrie/go-sfcurves/bitops"
	"github.com/forestrie/go-sfcurves/curve"
	"github.com/stretchr/testify/require"
)

func sortedGrid(t *testing.T, gridN int, kind curve.OrderKind) curve.CoordinateSet {
	set, err := curve.GenerateGrid(gridN)
	require.NoError(t, err)
	tr, err := curve.SortByOrder(set, kind)
	require.NoError(t, err)
	return tr
}

func TestNewLayout(t *testing.T) {
	l, err := newLayout(704, 8)
	require.NoError(t, err)
	require.Equal(t, layout{cell: 88, extent: 704}, l)

	l, err = newLayout(704, 3)
	require.NoError(t, err)
	require.Equal(t, layout{cell: 234, extent: 702}, l)

	x, y := l.centre(curve.Coordinate{X: 1, Y: 2})
	require.Equal(t, 234+117, x)
	require.Equal(t, 468+117, y)

	_, err = newLayout(5, 8)
	require.ErrorIs(t, err, bitops.ErrOutOfRange)
	_, err = newLayout(704, 0)
	require.ErrorIs(t, err, bitops.ErrInvalidArgument)
}

func TestWriteRanks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRanks(&buf, sortedGrid(t, 2, curve.GrayOrder)))
	require.Equal(t, "gray\n0 1\n3 2\n", buf.String())

	buf.Reset()
	require.NoError(t, writeRanks(&buf, sortedGrid(t, 4, curve.ZOrder)))
	require.Equal(t, strings.Join([]string{
		"z",
		" 0  1  4  5",
		" 2  3  6  7",
		" 8  9 12 13",
		"10 11 14 15",
		"",
	}, "\n"), buf.String())
}

func TestWriteSegments(t *testing.T) {
	l, err := newLayout(704, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSegments(&buf, sortedGrid(t, 2, curve.ZOrder), l))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "0\t(0, 0) -> (1, 0)\t(176,176) -> (528,176)", lines[0])
}

func TestWriteOrder(t *testing.T) {
	l, err := newLayout(704, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeOrder(&buf, sortedGrid(t, 2, curve.DoubleGrayOrder), l))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "# double-gray order, 2 x 2, grid extent 704px", lines[0])
	require.Equal(t, "3\t0\t1\t3\t176\t528", lines[5])
}

var errWriterFull = errors.New("writer full")

// limitWriter accepts n bytes and then fails every write.
type limitWriter struct{ n int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		w.n = 0
		return 0, errWriterFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWritersReturnWriteErrors(t *testing.T) {
	l, err := newLayout(704, 4)
	require.NoError(t, err)
	tr := sortedGrid(t, 4, curve.GrayOrder)

	tests := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{"order", func(w io.Writer) error { return writeOrder(w, tr, l) }},
		{"segments", func(w io.Writer) error { return writeSegments(w, tr, l) }},
		{"ranks", func(w io.Writer) error { return writeRanks(w, tr) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var full bytes.Buffer
			require.NoError(t, tt.write(&full))

			// fail on the first write, then on the last one
			for _, n := range []int{0, full.Len() - 1} {
				require.ErrorIs(t, tt.write(&limitWriter{n: n}), errWriterFull, "n=%d", n)
			}
		})
	}
}

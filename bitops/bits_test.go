package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPow2(t *testing.T) {
	tests := []struct {
		name string
		num  uint64
		want bool
	}{
		{"zero is not a power of two", 0, false},
		{"1 is a power of two", 1, true},
		{"16 is a power of two", 16, true},
		{"24 is not a power of two", 24, false},
		{"top bit is a power of two", 1 << 63, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPow2(tt.num); got != tt.want {
				t.Errorf("IsPow2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWidth(t *testing.T) {
	for _, w := range []uint{2, 4, 8, 16, 32, 64} {
		require.NoError(t, CheckWidth(w), "width %d", w)
	}
	for _, w := range []uint{0, 1, 3, 12, 33, 128} {
		require.ErrorIs(t, CheckWidth(w), ErrInvalidArgument, "width %d", w)
	}
}

func TestAxisLimit(t *testing.T) {
	require.Equal(t, uint64(1<<16), AxisLimit(32))
	require.Equal(t, uint64(1<<32), AxisLimit(64))
	require.Equal(t, uint64(2), AxisLimit(2))

	require.NoError(t, CheckAxis(0xffff, 32))
	require.ErrorIs(t, CheckAxis(0x10000, 32), ErrOutOfRange)
}

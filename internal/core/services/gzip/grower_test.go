package gzip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrow(t *testing.T) {
	buf := []byte{1, 2, 3, 4}

	grown := grow(buf, 4)
	require.Len(t, grown, 8)
	require.Equal(t, []byte{1, 2, 3, 4}, grown[:4])
	require.Equal(t, []byte{0, 0, 0, 0}, grown[4:])
}

func TestGrowAlwaysAddsSpace(t *testing.T) {
	// Non-positive steps still add a byte so codec loops keep making
	// progress instead of stalling on a full buffer.
	buf := make([]byte, 3)

	grown := grow(buf, 0)
	require.Len(t, grown, 4)

	grown = grow(grown, -8)
	require.Len(t, grown, 5)
}

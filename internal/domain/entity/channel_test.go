package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	ch, err := ParseChannel("r")
	require.NoError(t, err)
	require.Equal(t, ChannelRed, ch)

	_, err = ParseChannel("x")
	require.Error(t, err)
}

func TestChannels_Order(t *testing.T) {
	require.Equal(t, []Channel{ChannelRed, ChannelGreen, ChannelBlue}, Channels)
}

func TestNormalize_UnitRange(t *testing.T) {
	size := FrameSize{Width: 100, Height: 200}

	n := Normalize(Position{X: 24, Y: 24}, size, false)
	require.InDelta(t, 0.24, n.X, 1e-9)
	require.InDelta(t, 0.12, n.Y, 1e-9)

	require.GreaterOrEqual(t, n.X, 0.0)
	require.LessOrEqual(t, n.X, 1.0)
	require.GreaterOrEqual(t, n.Y, 0.0)
	require.LessOrEqual(t, n.Y, 1.0)
}

func TestNormalize_PixelCoords(t *testing.T) {
	size := FrameSize{Width: 100, Height: 100}

	n := Normalize(Position{X: 42, Y: 7}, size, true)
	require.Equal(t, NormalizedPosition{X: 42.0, Y: 7.0}, n)
}

func TestNormalize_SentinelNeverScaled(t *testing.T) {
	size := FrameSize{Width: 100, Height: 100}

	n := Normalize(SentinelPosition, size, false)
	require.Equal(t, NormalizedPosition{X: -1.0, Y: -1.0}, n)

	n = Normalize(SentinelPosition, size, true)
	require.Equal(t, NormalizedPosition{X: -1.0, Y: -1.0}, n)
}

func TestPosition_IsSentinel(t *testing.T) {
	require.True(t, SentinelPosition.IsSentinel())
	require.False(t, Position{X: 0, Y: 0}.IsSentinel())
	require.False(t, Position{X: -1, Y: 0}.IsSentinel())
}

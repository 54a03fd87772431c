package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrajectory_AppendOrder(t *testing.T) {
	var tr Trajectory
	require.Equal(t, 0, tr.Len())

	_, ok := tr.Last()
	require.False(t, ok)

	tr.Append(Position{X: 1, Y: 2})
	tr.Append(SentinelPosition)
	tr.Append(Position{X: 3, Y: 4})

	require.Equal(t, 3, tr.Len())
	require.Equal(t, []Position{{X: 1, Y: 2}, SentinelPosition, {X: 3, Y: 4}}, tr.Positions())

	last, ok := tr.Last()
	require.True(t, ok)
	require.Equal(t, Position{X: 3, Y: 4}, last)
}

func TestTrajectory_PositionsReturnsCopy(t *testing.T) {
	var tr Trajectory
	tr.Append(Position{X: 1, Y: 1})

	got := tr.Positions()
	got[0] = Position{X: 9, Y: 9}

	require.Equal(t, []Position{{X: 1, Y: 1}}, tr.Positions())
}

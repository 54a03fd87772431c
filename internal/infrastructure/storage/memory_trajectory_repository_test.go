package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"led-tracker/internal/domain/entity"
)

func TestMemoryTrajectoryRepository_AppendAndLatest(t *testing.T) {
	repo := NewMemoryTrajectoryRepository()

	_, ok := repo.Latest(entity.ChannelRed)
	require.False(t, ok)

	repo.Append(entity.ChannelRed, entity.Position{X: 1, Y: 2})
	repo.Append(entity.ChannelRed, entity.SentinelPosition)
	repo.Append(entity.ChannelGreen, entity.Position{X: 5, Y: 6})

	last, ok := repo.Latest(entity.ChannelRed)
	require.True(t, ok)
	require.Equal(t, entity.SentinelPosition, last)

	require.Equal(t, []entity.Position{{X: 1, Y: 2}, entity.SentinelPosition}, repo.Trajectory(entity.ChannelRed))
	require.Equal(t, []entity.Position{{X: 5, Y: 6}}, repo.Trajectory(entity.ChannelGreen))
	require.Nil(t, repo.Trajectory(entity.ChannelBlue))
}

func TestMemoryTrajectoryRepository_Snapshot(t *testing.T) {
	repo := NewMemoryTrajectoryRepository()
	repo.Append(entity.ChannelBlue, entity.Position{X: 3, Y: 4})

	snap := repo.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, []entity.Position{{X: 3, Y: 4}}, snap[entity.ChannelBlue])

	snap[entity.ChannelBlue][0] = entity.Position{X: 9, Y: 9}
	require.Equal(t, []entity.Position{{X: 3, Y: 4}}, repo.Trajectory(entity.ChannelBlue))
}

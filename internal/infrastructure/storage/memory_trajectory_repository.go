package storage

import (
	"sync"

	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
)

// MemoryTrajectoryRepository — in-memory хранилище траекторий по каналам.
type MemoryTrajectoryRepository struct {
	mu     sync.RWMutex
	tracks map[entity.Channel]*entity.Trajectory
}

// NewMemoryTrajectoryRepository создаёт новое in-memory хранилище.
func NewMemoryTrajectoryRepository() *MemoryTrajectoryRepository {
	return &MemoryTrajectoryRepository{
		tracks: make(map[entity.Channel]*entity.Trajectory),
	}
}

// Append добавляет позицию очередного кадра в траекторию канала.
func (r *MemoryTrajectoryRepository) Append(ch entity.Channel, p entity.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()

	track, exists := r.tracks[ch]
	if !exists {
		track = &entity.Trajectory{}
		r.tracks[ch] = track
	}
	track.Append(p)
}

// Latest возвращает позицию последнего обработанного кадра канала.
func (r *MemoryTrajectoryRepository) Latest(ch entity.Channel) (entity.Position, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	track, exists := r.tracks[ch]
	if !exists {
		return entity.Position{}, false
	}
	return track.Last()
}

// Trajectory возвращает копию истории канала.
func (r *MemoryTrajectoryRepository) Trajectory(ch entity.Channel) []entity.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	track, exists := r.tracks[ch]
	if !exists {
		return nil
	}
	return track.Positions()
}

// Snapshot возвращает копии траекторий всех каналов.
func (r *MemoryTrajectoryRepository) Snapshot() map[entity.Channel][]entity.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[entity.Channel][]entity.Position, len(r.tracks))
	for ch, track := range r.tracks {
		out[ch] = track.Positions()
	}
	return out
}

// Проверка реализации интерфейса
var _ port.TrajectoryRepository = (*MemoryTrajectoryRepository)(nil)

package port

import "led-tracker/internal/domain/entity"

// TrajectoryRepository — хранилище траекторий по каналам.
type TrajectoryRepository interface {
	// Append добавляет позицию очередного кадра в траекторию канала
	// и обновляет его последнюю известную позицию.
	Append(ch entity.Channel, p entity.Position)

	// Latest возвращает позицию последнего обработанного кадра канала.
	Latest(ch entity.Channel) (entity.Position, bool)

	// Trajectory возвращает копию истории канала в порядке прихода кадров.
	Trajectory(ch entity.Channel) []entity.Position

	// Snapshot возвращает копии траекторий всех каналов.
	Snapshot() map[entity.Channel][]entity.Position
}

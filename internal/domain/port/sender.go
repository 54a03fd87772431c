package port

import "led-tracker/internal/domain/entity"

// PositionSender — отправитель позиций внешнему слушателю.
// Вызывается один раз на канал на кадр, после нормализации,
// в фиксированном порядке каналов сессии.
type PositionSender interface {
	Send(ch entity.Channel, pos entity.NormalizedPosition, size entity.FrameSize) error
}

package port

import "led-tracker/internal/domain/entity"

// Detector — детектор LED на одноканальной плоскости.
type Detector interface {
	// Detect находит центроид крупнейшей яркой области плоскости.
	// Яркими считаются пиксели строго выше порога. Если таких областей
	// нет, возвращает entity.SentinelPosition. Чистая функция.
	Detect(plane *entity.Plane, threshold int) entity.Position
}

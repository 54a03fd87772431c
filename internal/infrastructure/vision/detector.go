package vision

import (
	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
)

// Защита от деления на ноль при вырожденной нулевой площади.
const centroidEpsilon = 1e-6

// BlobDetector находит крупнейшую связную яркую область плоскости
// и возвращает её центроид. Связность — 8 соседей, обход строго
// построчный, поэтому результат детерминирован.
type BlobDetector struct{}

// NewBlobDetector создаёт детектор LED.
func NewBlobDetector() *BlobDetector {
	return &BlobDetector{}
}

// Detect бинаризует плоскость по порогу (строго больше — "включен"),
// выделяет связные области и возвращает центроид крупнейшей из них.
// При равных площадях побеждает область, встреченная первой.
// Если включённых пикселей нет — entity.SentinelPosition.
func (d *BlobDetector) Detect(plane *entity.Plane, threshold int) entity.Position {
	w, h := plane.Width, plane.Height
	visited := make([]bool, w*h)

	var (
		found    bool
		bestArea int
		bestSumX int64
		bestSumY int64
	)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || int(plane.At(x, y)) <= threshold {
				continue
			}

			area, sumX, sumY := d.floodRegion(plane, visited, x, y, threshold)
			if !found || area > bestArea {
				found = true
				bestArea = area
				bestSumX = sumX
				bestSumY = sumY
			}
		}
	}

	if !found {
		return entity.SentinelPosition
	}

	// Площадь найденной области — счётчик пикселей, то есть >= 1,
	// и целочисленные центроиды не должны сползать вниз из-за эпсилона.
	// Эпсилон остаётся только для вырожденной нулевой площади.
	denom := float64(bestArea)
	if bestArea == 0 {
		denom = centroidEpsilon
	}
	return entity.Position{
		X: int(float64(bestSumX) / denom),
		Y: int(float64(bestSumY) / denom),
	}
}

// floodRegion обходит одну связную область от стартового пикселя
// и накапливает её моменты: площадь и суммы координат.
func (d *BlobDetector) floodRegion(plane *entity.Plane, visited []bool, startX, startY, threshold int) (area int, sumX, sumY int64) {
	w, h := plane.Width, plane.Height

	stack := []entity.Position{{X: startX, Y: startY}}
	visited[startY*w+startX] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		area++
		sumX += int64(p.X)
		sumY += int64(p.Y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if visited[ny*w+nx] || int(plane.At(nx, ny)) <= threshold {
					continue
				}
				visited[ny*w+nx] = true
				stack = append(stack, entity.Position{X: nx, Y: ny})
			}
		}
	}

	return area, sumX, sumY
}

var _ port.Detector = (*BlobDetector)(nil)

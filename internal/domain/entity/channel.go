package entity

import "fmt"

// Channel — один из трёх отслеживаемых цветовых каналов.
type Channel string

const (
	ChannelRed   Channel = "r" // красный канал
	ChannelGreen Channel = "g" // зелёный канал
	ChannelBlue  Channel = "b" // синий канал
)

// Channels задаёт фиксированный порядок обхода каналов:
// детекция, накопление и отправка всегда идут в этом порядке.
var Channels = []Channel{ChannelRed, ChannelGreen, ChannelBlue}

// ParseChannel превращает строковый ключ в канал.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelRed, ChannelGreen, ChannelBlue:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// Position — позиция LED в пиксельных координатах кадра.
type Position struct {
	X int
	Y int
}

// SentinelPosition — зарезервированное значение "LED не найден в этом кадре".
var SentinelPosition = Position{X: -1, Y: -1}

// IsSentinel сообщает, что детекция в этом кадре ничего не нашла.
func (p Position) IsSentinel() bool {
	return p == SentinelPosition
}

// FrameSize — размер кадра, каким его видит детектор (после кропа).
type FrameSize struct {
	Width  int
	Height int
}

// NormalizedPosition — позиция, подготовленная к отправке.
type NormalizedPosition struct {
	X float64
	Y float64
}

// Normalize переводит позицию в настроенную систему координат.
// Сентинел никогда не масштабируется: деление -1 на размер кадра дало бы
// мелкую отрицательную дробь вместо явно невалидного значения.
func Normalize(p Position, size FrameSize, pixelCoords bool) NormalizedPosition {
	if pixelCoords || p.IsSentinel() {
		return NormalizedPosition{X: float64(p.X), Y: float64(p.Y)}
	}

	return NormalizedPosition{
		X: float64(p.X) / float64(size.Width),
		Y: float64(p.Y) / float64(size.Height),
	}
}

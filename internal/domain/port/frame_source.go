package port

import "led-tracker/internal/domain/entity"

// FrameSource — источник кадров (камера или её замена в тестах).
type FrameSource interface {
	// Size возвращает размер кадров источника, постоянный на всю сессию.
	Size() entity.FrameSize

	// ReadFrame читает очередной кадр. Второе значение false означает
	// исчерпание или отказ источника — сессия на этом завершается.
	// Возвращённый кадр принадлежит текущей итерации и не переживает
	// следующий вызов ReadFrame.
	ReadFrame() (*entity.Frame, bool)

	// Close освобождает устройство. Безопасен при повторном вызове.
	Close() error
}

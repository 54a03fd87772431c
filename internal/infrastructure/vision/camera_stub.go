//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
)

// Camera — заглушка источника кадров для сборки без OpenCV.
type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(deviceIndex int, frameRate int, resolution *entity.FrameSize) (*Camera, error) {
	_ = deviceIndex
	_ = frameRate
	_ = resolution
	return nil, errors.New("gocv build tag is not enabled")
}

// Size возвращает нулевой размер в сборке без тега gocv.
func (c *Camera) Size() entity.FrameSize {
	return entity.FrameSize{}
}

// ReadFrame всегда сообщает об исчерпании в сборке без тега gocv.
func (c *Camera) ReadFrame() (*entity.Frame, bool) {
	return nil, false
}

// Close ничего не освобождает в сборке без тега gocv.
func (c *Camera) Close() error {
	return nil
}

var _ port.FrameSource = (*Camera)(nil)

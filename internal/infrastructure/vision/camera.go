//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
)

// Camera — источник кадров поверх системной видеокамеры.
type Camera struct {
	capture *gocv.VideoCapture
	size    entity.FrameSize
	closed  bool
}

// OpenCamera открывает устройство и настраивает частоту кадров
// и, при необходимости, разрешение. Итоговый размер кадра
// перечитывается у камеры и фиксируется на всю сессию.
func OpenCamera(deviceIndex int, frameRate int, resolution *entity.FrameSize) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", deviceIndex, err)
	}

	capture.Set(gocv.VideoCaptureFPS, float64(frameRate))
	if resolution != nil {
		capture.Set(gocv.VideoCaptureFrameWidth, float64(resolution.Width))
		capture.Set(gocv.VideoCaptureFrameHeight, float64(resolution.Height))
	}

	size := entity.FrameSize{
		Width:  int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}
	if size.Width <= 0 || size.Height <= 0 {
		capture.Close()
		return nil, fmt.Errorf("camera %d reports invalid frame size %dx%d", deviceIndex, size.Width, size.Height)
	}

	return &Camera{capture: capture, size: size}, nil
}

// Size возвращает размер кадров камеры.
func (c *Camera) Size() entity.FrameSize {
	return c.size
}

// ReadFrame читает очередной кадр и копирует его в entity.Frame,
// чтобы буфер Mat не пережил текущую итерацию.
func (c *Camera) ReadFrame() (*entity.Frame, bool) {
	if c.closed || !c.capture.IsOpened() {
		return nil, false
	}

	mat := gocv.NewMat()
	defer mat.Close()

	if !c.capture.Read(&mat) || mat.Empty() {
		return nil, false
	}

	return matToFrame(mat), true
}

// Close освобождает устройство. Повторный вызов безопасен.
func (c *Camera) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.capture.Close()
}

// matToFrame копирует BGR-мат OpenCV в кадр с раскладкой RGB.
func matToFrame(mat gocv.Mat) *entity.Frame {
	frame := entity.NewFrame(mat.Cols(), mat.Rows())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			b := mat.GetUCharAt(y, x*3)
			g := mat.GetUCharAt(y, x*3+1)
			r := mat.GetUCharAt(y, x*3+2)
			frame.SetRGB(x, y, r, g, b)
		}
	}
	return frame
}

var _ port.FrameSource = (*Camera)(nil)

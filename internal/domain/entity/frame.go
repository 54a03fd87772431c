package entity

import "fmt"

// ROI — прямоугольник интереса в пиксельных координатах исходного кадра.
type ROI struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Validate проверяет, что ROI целиком лежит внутри кадра заданного размера.
func (r ROI) Validate(size FrameSize) error {
	if r.Top < 0 || r.Left < 0 {
		return fmt.Errorf("roi (%d,%d,%d,%d) has negative bounds", r.Top, r.Left, r.Bottom, r.Right)
	}
	if r.Top >= r.Bottom || r.Left >= r.Right {
		return fmt.Errorf("roi (%d,%d,%d,%d) is empty or inverted", r.Top, r.Left, r.Bottom, r.Right)
	}
	if r.Bottom > size.Height || r.Right > size.Width {
		return fmt.Errorf("roi (%d,%d,%d,%d) is out of frame bounds %dx%d",
			r.Top, r.Left, r.Bottom, r.Right, size.Width, size.Height)
	}
	return nil
}

// Size возвращает размер кадра после кропа по этому ROI.
func (r ROI) Size() FrameSize {
	return FrameSize{Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}

// Frame — кадр с тремя каналами интенсивности на пиксель.
type Frame struct {
	Width  int
	Height int
	pix    []uint8 // упаковка RGB, 3 байта на пиксель, построчно
}

// NewFrame создаёт пустой (чёрный) кадр заданного размера.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Size возвращает размер кадра.
func (f *Frame) Size() FrameSize {
	return FrameSize{Width: f.Width, Height: f.Height}
}

// At возвращает интенсивности пикселя (x, y).
func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.pix[i], f.pix[i+1], f.pix[i+2]
}

// SetRGB задаёт интенсивности пикселя (x, y).
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	i := (y*f.Width + x) * 3
	f.pix[i] = r
	f.pix[i+1] = g
	f.pix[i+2] = b
}

// Crop вырезает ROI из кадра. При nil возвращает кадр без изменений.
// ROI должен быть провалидирован заранее, один раз на сессию.
func (f *Frame) Crop(roi *ROI) *Frame {
	if roi == nil {
		return f
	}

	cropped := NewFrame(roi.Right-roi.Left, roi.Bottom-roi.Top)
	for y := 0; y < cropped.Height; y++ {
		src := ((roi.Top+y)*f.Width + roi.Left) * 3
		dst := y * cropped.Width * 3
		copy(cropped.pix[dst:dst+cropped.Width*3], f.pix[src:src+cropped.Width*3])
	}
	return cropped
}

// Split раскладывает кадр на независимые одноканальные плоскости.
func (f *Frame) Split() map[Channel]*Plane {
	planes := map[Channel]*Plane{
		ChannelRed:   NewPlane(f.Width, f.Height),
		ChannelGreen: NewPlane(f.Width, f.Height),
		ChannelBlue:  NewPlane(f.Width, f.Height),
	}

	for i := 0; i < f.Width*f.Height; i++ {
		planes[ChannelRed].pix[i] = f.pix[i*3]
		planes[ChannelGreen].pix[i] = f.pix[i*3+1]
		planes[ChannelBlue].pix[i] = f.pix[i*3+2]
	}
	return planes
}

// Plane — одноканальная плоскость интенсивности.
type Plane struct {
	Width  int
	Height int
	pix    []uint8
}

// NewPlane создаёт пустую плоскость заданного размера.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		pix:    make([]uint8, width*height),
	}
}

// At возвращает интенсивность пикселя (x, y).
func (p *Plane) At(x, y int) uint8 {
	return p.pix[y*p.Width+x]
}

// Set задаёт интенсивность пикселя (x, y).
func (p *Plane) Set(x, y int, v uint8) {
	p.pix[y*p.Width+x] = v
}

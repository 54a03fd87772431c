package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gradientFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.SetRGB(x, y, uint8(x%256), uint8(y%256), uint8((x+y)%256))
		}
	}
	return f
}

func TestROI_Validate(t *testing.T) {
	size := FrameSize{Width: 100, Height: 80}

	require.NoError(t, ROI{Top: 0, Left: 0, Bottom: 80, Right: 100}.Validate(size))
	require.NoError(t, ROI{Top: 10, Left: 20, Bottom: 30, Right: 40}.Validate(size))

	require.Error(t, ROI{Top: -1, Left: 0, Bottom: 10, Right: 10}.Validate(size))
	require.Error(t, ROI{Top: 10, Left: 0, Bottom: 10, Right: 10}.Validate(size))
	require.Error(t, ROI{Top: 20, Left: 0, Bottom: 10, Right: 10}.Validate(size))
	require.Error(t, ROI{Top: 0, Left: 0, Bottom: 81, Right: 10}.Validate(size))
	require.Error(t, ROI{Top: 0, Left: 0, Bottom: 10, Right: 101}.Validate(size))
}

func TestROI_Size(t *testing.T) {
	roi := ROI{Top: 20, Left: 20, Bottom: 30, Right: 30}
	require.Equal(t, FrameSize{Width: 10, Height: 10}, roi.Size())
}

func TestFrame_CropNilPassthrough(t *testing.T) {
	f := gradientFrame(8, 6)
	require.Same(t, f, f.Crop(nil))
}

func TestFrame_Crop(t *testing.T) {
	f := gradientFrame(100, 80)
	roi := &ROI{Top: 10, Left: 20, Bottom: 30, Right: 50}

	cropped := f.Crop(roi)
	require.Equal(t, 30, cropped.Width)
	require.Equal(t, 20, cropped.Height)

	for y := 0; y < cropped.Height; y++ {
		for x := 0; x < cropped.Width; x++ {
			wantR, wantG, wantB := f.At(x+roi.Left, y+roi.Top)
			gotR, gotG, gotB := cropped.At(x, y)
			require.Equal(t, wantR, gotR)
			require.Equal(t, wantG, gotG)
			require.Equal(t, wantB, gotB)
		}
	}
}

func TestFrame_Split(t *testing.T) {
	f := NewFrame(4, 3)
	f.SetRGB(1, 2, 10, 20, 30)
	f.SetRGB(3, 0, 200, 150, 100)

	planes := f.Split()
	require.Len(t, planes, 3)

	for _, ch := range Channels {
		require.Equal(t, 4, planes[ch].Width)
		require.Equal(t, 3, planes[ch].Height)
	}

	require.Equal(t, uint8(10), planes[ChannelRed].At(1, 2))
	require.Equal(t, uint8(20), planes[ChannelGreen].At(1, 2))
	require.Equal(t, uint8(30), planes[ChannelBlue].At(1, 2))
	require.Equal(t, uint8(200), planes[ChannelRed].At(3, 0))
	require.Equal(t, uint8(150), planes[ChannelGreen].At(3, 0))
	require.Equal(t, uint8(100), planes[ChannelBlue].At(3, 0))
	require.Equal(t, uint8(0), planes[ChannelRed].At(0, 0))
}

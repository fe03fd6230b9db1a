package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayImage(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestNormalizeResolution_UpscalesLowDPI(t *testing.T) {
	img := grayImage(100, 50, 128)

	got := normalizeResolution(img, 72)
	b := got.Bounds()
	// 300/72 ≈ 4.17x
	assert.Equal(t, 416, b.Dx())
	assert.Equal(t, 208, b.Dy())
}

func TestNormalizeResolution_HighDPIUntouched(t *testing.T) {
	img := grayImage(100, 50, 128)

	got := normalizeResolution(img, 300)
	assert.Equal(t, img.Bounds(), got.Bounds())
}

func TestNormalizeResolution_UnknownDPIDefaultsLow(t *testing.T) {
	img := grayImage(10, 10, 128)

	got := normalizeResolution(img, 0)
	assert.Greater(t, got.Bounds().Dx(), 10)
}

func TestBinarize_OnlyBlackAndWhite(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 1))
	for x := range 16 {
		img.SetGray(x, 0, color.Gray{Y: uint8(x * 16)})
	}

	got := binarize(img, 128)
	for x := range 16 {
		v := got.GrayAt(x, 0).Y
		assert.True(t, v == 0 || v == 255, "pixel %d has value %d", x, v)
	}
	assert.Equal(t, uint8(0), got.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), got.GrayAt(15, 0).Y)
}

func TestMedianFilter_RemovesSpeck(t *testing.T) {
	img := grayImage(9, 9, 255)
	img.SetGray(4, 4, color.Gray{Y: 0}) // isolated dark pixel

	got := medianFilter(img, 1)
	assert.Equal(t, uint8(255), got.GrayAt(4, 4).Y)
}

func TestMaxFilter_ThickensLightRegions(t *testing.T) {
	img := grayImage(9, 9, 0)
	img.SetGray(4, 4, color.Gray{Y: 255})

	got := maxFilter(img, 1)
	// The bright pixel grows into its 3x3 neighborhood.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			assert.Equal(t, uint8(255), got.GrayAt(4+dx, 4+dy).Y)
		}
	}
	assert.Equal(t, uint8(0), got.GrayAt(0, 0).Y)
}

func TestAutocontrast_StretchesRange(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 1))
	for x := range 100 {
		img.SetGray(x, 0, color.Gray{Y: uint8(100 + x/2)}) // values 100..149
	}

	got := autocontrast(img, 0.02)
	hist := histogram(got)
	low, high := 255, 0
	for v, c := range hist {
		if c == 0 {
			continue
		}
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	assert.LessOrEqual(t, low, 10)
	assert.GreaterOrEqual(t, high, 245)
}

func TestEqualize_UniformImageStable(t *testing.T) {
	img := grayImage(8, 8, 100)

	got := equalize(img)
	// A single-valued histogram maps to the top of the range.
	assert.Equal(t, uint8(255), got.GrayAt(3, 3).Y)
}

func TestPreprocess_ProducesBinaryImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := range 20 {
		for x := range 20 {
			if (x/4+y/4)%2 == 0 {
				src.Set(x, y, color.RGBA{A: 255})
			} else {
				src.Set(x, y, color.White)
			}
		}
	}

	got := Preprocess(src, 300)
	require.NotNil(t, got)
	gray, ok := got.(*image.Gray)
	require.True(t, ok)
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := gray.GrayAt(x, y).Y
			assert.True(t, v == 0 || v == 255)
		}
	}
}

func TestDetectRotation_NilImage(t *testing.T) {
	angle, conf := detectRotation(nil)
	assert.Equal(t, 0, angle)
	assert.Zero(t, conf)
}

func TestDeskew_UniformImagePassesThrough(t *testing.T) {
	img := grayImage(32, 32, 200)
	got := deskew(img)
	assert.Equal(t, img.Bounds().Dx(), got.Bounds().Dx())
}

func TestDetectRotation_VerticalStripesReadAsUpright(t *testing.T) {
	// Vertical stripes flip constantly when scanning along rows, the
	// signature of upright horizontal text.
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			if x%8 < 4 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	angle, conf := detectRotation(img)
	assert.Equal(t, 0, angle)
	assert.Greater(t, conf, 0.5)
}

package ocr

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
)

// deskewConfidence is the minimum heuristic confidence required before a
// rotation is applied. Below it the image passes through unrotated.
const deskewConfidence = 0.6

// deskew attempts to detect a 90-degree rotation from the distribution of
// dark/light transitions along rows and columns. Horizontal text produces
// more transitions along rows than columns; the opposite suggests the page
// was scanned sideways. Detection is best-effort and fails open: any
// inconclusive signal leaves the image untouched.
func deskew(img image.Image) image.Image {
	angle, confidence := detectRotation(img)
	if angle == 0 || confidence < deskewConfidence {
		return img
	}
	slog.Debug("applying skew correction", "angle", angle, "confidence", confidence)
	return imaging.Rotate(img, float64(angle), color.White)
}

// detectRotation returns 0 or 90 together with a confidence in [0, 1].
func detectRotation(img image.Image) (int, float64) {
	if img == nil {
		return 0, 0
	}

	thumb := imaging.Resize(img, 128, 128, imaging.Lanczos)
	b := thumb.Bounds()
	if b.Dx() <= 1 || b.Dy() <= 1 {
		return 0, 0
	}

	mean := meanLuminance(thumb)
	rows := countTransitions(thumb, mean, true)
	cols := countTransitions(thumb, mean, false)

	total := rows + cols
	if total == 0 {
		return 0, 0
	}
	if cols > rows {
		return 90, (cols - rows) / total
	}
	return 0, (rows - cols) / total
}

func meanLuminance(img image.Image) float64 {
	b := img.Bounds()
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += luminance(img.At(x, y))
		}
	}
	return sum / float64(b.Dx()*b.Dy())
}

// countTransitions counts dark/light flips scanning along rows or columns.
func countTransitions(img image.Image, mean float64, alongRows bool) float64 {
	b := img.Bounds()
	var transitions float64

	outer, inner := b.Dy(), b.Dx()
	if !alongRows {
		outer, inner = inner, outer
	}
	for o := range outer {
		prev := -1
		for i := range inner {
			x, y := i, o
			if !alongRows {
				x, y = o, i
			}
			cur := 0
			if luminance(img.At(b.Min.X+x, b.Min.Y+y)) < mean {
				cur = 1
			}
			if prev >= 0 && cur != prev {
				transitions++
			}
			prev = cur
		}
	}
	return transitions
}

func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}

func grayColor(v float64) color.Gray {
	return color.Gray{Y: clampByte(v)}
}

func clampByte(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

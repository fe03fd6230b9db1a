// Package ocr recovers text from extracted PDF images. Each image is
// preprocessed, recognized under several page-segmentation profiles against
// both the original and the preprocessed bitmap, and the best candidate is
// selected by a scoring heuristic before post-processing.
package ocr

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

const (
	// targetDPI is the resolution recognition works best at. Images
	// reporting less are upscaled proportionally.
	targetDPI = 300

	// binarizeThreshold is the fixed midpoint cutoff for binarization.
	binarizeThreshold = 128

	// filterRadius is the window radius of the median and max filters
	// (radius 1 = 3x3 window).
	filterRadius = 1

	// autocontrastClip is the fraction of darkest and lightest pixels
	// ignored when stretching contrast.
	autocontrastClip = 0.02
)

// Preprocess runs the fixed normalization pipeline: DPI upscale, grayscale,
// median denoise, contrast stretch, histogram equalization, binarization,
// stroke thickening and best-effort deskew.
func Preprocess(img image.Image, dpi int) image.Image {
	scaled := normalizeResolution(img, dpi)
	gray := toGray(imaging.Grayscale(scaled))
	gray = medianFilter(gray, filterRadius)
	gray = autocontrast(gray, autocontrastClip)
	gray = equalize(gray)
	gray = binarize(gray, binarizeThreshold)
	gray = maxFilter(gray, filterRadius)
	return deskew(gray)
}

// normalizeResolution upscales images below targetDPI using Lanczos
// resampling. Images never get scaled down.
func normalizeResolution(img image.Image, dpi int) image.Image {
	if dpi <= 0 {
		dpi = assumedImageDPI
	}
	if dpi >= targetDPI {
		return img
	}
	scale := float64(targetDPI) / float64(dpi)
	bounds := img.Bounds()
	w := int(float64(bounds.Dx()) * scale)
	h := int(float64(bounds.Dy()) * scale)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// assumedImageDPI mirrors the extractor default for images without
// resolution metadata.
const assumedImageDPI = 72

// toGray flattens any image into an 8-bit grayscale bitmap.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x-bounds.Min.X, y-bounds.Min.Y, grayColor(lum))
		}
	}
	return gray
}

// medianFilter removes speckle noise by replacing each pixel with the
// median of its neighborhood.
func medianFilter(src *image.Gray, radius int) *image.Gray {
	return neighborhoodFilter(src, radius, func(window []uint8) uint8 {
		sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
		return window[len(window)/2]
	})
}

// maxFilter dilates dark-on-light strokes by taking the neighborhood
// maximum, thickening thin glyph strokes after binarization.
func maxFilter(src *image.Gray, radius int) *image.Gray {
	return neighborhoodFilter(src, radius, func(window []uint8) uint8 {
		maxVal := window[0]
		for _, v := range window[1:] {
			if v > maxVal {
				maxVal = v
			}
		}
		return maxVal
	})
}

func neighborhoodFilter(src *image.Gray, radius int, reduce func([]uint8) uint8) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(bounds)
	window := make([]uint8, 0, (2*radius+1)*(2*radius+1))

	for y := range h {
		for x := range w {
			window = window[:0]
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					window = append(window, src.GrayAt(bounds.Min.X+nx, bounds.Min.Y+ny).Y)
				}
			}
			dst.SetGray(bounds.Min.X+x, bounds.Min.Y+y, grayColor(float64(reduce(window))))
		}
	}
	return dst
}

// autocontrast stretches pixel values to the full range after clipping the
// given fraction off both ends of the histogram.
func autocontrast(src *image.Gray, clip float64) *image.Gray {
	hist := histogram(src)
	total := 0
	for _, c := range hist {
		total += c
	}
	if total == 0 {
		return src
	}

	cut := int(float64(total) * clip)
	lo, hi := 0, 255
	for acc := 0; lo < 255; lo++ {
		acc += hist[lo]
		if acc > cut {
			break
		}
	}
	for acc := 0; hi > 0; hi-- {
		acc += hist[hi]
		if acc > cut {
			break
		}
	}
	if hi <= lo {
		return src
	}

	scale := 255.0 / float64(hi-lo)
	return mapPixels(src, func(v uint8) uint8 {
		shifted := (float64(v) - float64(lo)) * scale
		return clampByte(shifted)
	})
}

// equalize spreads the histogram via the cumulative distribution.
func equalize(src *image.Gray) *image.Gray {
	hist := histogram(src)
	total := 0
	for _, c := range hist {
		total += c
	}
	if total == 0 {
		return src
	}

	var lut [256]uint8
	cum := 0
	for i, c := range hist {
		cum += c
		lut[i] = clampByte(float64(cum) * 255.0 / float64(total))
	}
	return mapPixels(src, func(v uint8) uint8 { return lut[v] })
}

// binarize applies a fixed midpoint threshold.
func binarize(src *image.Gray, threshold uint8) *image.Gray {
	return mapPixels(src, func(v uint8) uint8 {
		if v < threshold {
			return 0
		}
		return 255
	})
}

func histogram(src *image.Gray) [256]int {
	var hist [256]int
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[src.GrayAt(x, y).Y]++
		}
	}
	return hist
}

func mapPixels(src *image.Gray, fn func(uint8) uint8) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, grayColor(float64(fn(src.GrayAt(x, y).Y))))
		}
	}
	return dst
}

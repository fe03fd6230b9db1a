package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// charBlacklist drops glyphs Tesseract habitually hallucinates on noisy
// scans.
const charBlacklist = "|~_^°"

// Tesseract is the gosseract-backed Recognizer. A fresh client is created
// per call; clients are cheap next to recognition itself and per-call
// clients keep the type safe for concurrent use.
type Tesseract struct {
	languages []string
}

// NewTesseract creates a recognizer for the given languages
// (default: kor, eng).
func NewTesseract(languages ...string) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"kor", "eng"}
	}
	return &Tesseract{languages: languages}
}

// Recognize runs Tesseract over the image under the given
// page-segmentation mode.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, psm PageSegMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("setting languages: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(psm)); err != nil {
		return "", fmt.Errorf("setting page segmentation mode: %w", err)
	}
	if err := client.SetVariable(gosseract.SettableVariable("preserve_interword_spaces"), "1"); err != nil {
		return "", fmt.Errorf("setting tesseract variable: %w", err)
	}
	if err := client.SetBlacklist(charBlacklist); err != nil {
		return "", fmt.Errorf("setting blacklist: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding image for recognition: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("loading image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition: %w", err)
	}
	return text, nil
}

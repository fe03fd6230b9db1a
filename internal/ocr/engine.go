package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/jihooni6250/summary/internal/pdf"
)

// Sentinels for per-image soft failures. These are embedded in results and
// never abort processing of sibling images.
const (
	// NoTextSentinel is returned when every recognition candidate for an
	// image is empty or whitespace-only.
	NoTextSentinel = "no text could be recovered from the image"

	// failurePrefix marks a per-image recognition failure.
	failurePrefix = "ocr failed: "
)

// PageSegMode is a recognition layout assumption, numbered as Tesseract
// numbers them.
type PageSegMode int

const (
	PSMAuto         PageSegMode = 3
	PSMSingleColumn PageSegMode = 4
	PSMSingleBlock  PageSegMode = 6
	PSMSparseText   PageSegMode = 11
)

// recognitionModes is the fixed sweep of layout profiles tried per image.
var recognitionModes = []PageSegMode{PSMSingleBlock, PSMAuto, PSMSingleColumn, PSMSparseText}

// Recognizer turns a bitmap into text under a given page-segmentation mode.
// Implementations must be safe for sequential reuse.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, psm PageSegMode) (string, error)
}

// Result is the recognized text for one image, immutable once produced.
// Record is a non-owning back-reference to the source image.
type Result struct {
	Text   string
	Record *pdf.ImageRecord
}

// Failed reports whether the result carries a soft-failure sentinel rather
// than recovered text.
func (r Result) Failed() bool {
	return r.Text == NoTextSentinel || strings.HasPrefix(r.Text, failurePrefix)
}

// Engine runs the multi-pass recognition strategy over extracted images.
type Engine struct {
	recognizer Recognizer
	score      ScoreFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithScoreFunc replaces the candidate-selection heuristic.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(e *Engine) { e.score = fn }
}

// NewEngine creates an engine around the given recognizer.
func NewEngine(rec Recognizer, opts ...Option) *Engine {
	e := &Engine{recognizer: rec, score: DefaultScore}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessAll recovers text from every record in order. A failure on one
// image is recorded as a sentinel in that image's result and never stops
// its siblings.
func (e *Engine) ProcessAll(ctx context.Context, records []pdf.ImageRecord) []Result {
	results := make([]Result, 0, len(records))
	for i := range records {
		results = append(results, e.Process(ctx, &records[i]))
	}
	return results
}

// Process runs one image through preprocess, the recognition sweep,
// candidate selection and post-processing.
func (e *Engine) Process(ctx context.Context, rec *pdf.ImageRecord) (res Result) {
	res.Record = rec
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("recognition panicked", "page", rec.Page+1, "hash", rec.Hash, "panic", r)
			res.Text = fmt.Sprintf("%spanic: %v", failurePrefix, r)
		}
	}()

	preprocessed := Preprocess(rec.Image, rec.DPI)

	candidates := make([]string, 0, 2*len(recognitionModes))
	for _, mode := range recognitionModes {
		for _, img := range []image.Image{rec.Image, preprocessed} {
			text, err := e.recognizer.Recognize(ctx, img, mode)
			if err != nil {
				slog.Debug("recognition pass failed", "page", rec.Page+1, "psm", int(mode), "error", err)
				continue
			}
			candidates = append(candidates, text)
		}
	}

	best, ok := SelectBest(candidates, e.score)
	if !ok {
		res.Text = NoTextSentinel
		return res
	}
	res.Text = Postprocess(best)
	return res
}

// JoinText concatenates recovered text across results, skipping
// soft-failure sentinels.
func JoinText(results []Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Failed() || r.Text == "" {
			continue
		}
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, " ")
}

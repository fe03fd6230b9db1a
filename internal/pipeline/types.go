// Package pipeline orchestrates the document-to-summary flow: PDF text,
// title and image extraction, OCR over the images, text cleaning, keyword
// analysis and the remote summarization call.
package pipeline

import (
	"time"

	"github.com/jihooni6250/summary/internal/ocr"
)

// RunRequest describes one summarization run.
type RunRequest struct {
	// Path is the PDF file to process.
	Path string
	// SaveDir, when set, receives extracted images as files.
	SaveDir string
	// Keywords filters page text and is merged into the analyzed keyword
	// list handed to the summarizer.
	Keywords []string
	// Emphasis and Exclude are injected verbatim into the prompt.
	Emphasis []string
	Exclude  []string
	// SkipOCR bypasses the recognition stage entirely, preprocessing
	// included; extracted images are still counted and saved.
	SkipOCR bool
}

// RunResult is the outcome of a run. Title and Summary may carry the
// documented sentinel strings; only a document that cannot be opened
// surfaces as an error instead of a result.
type RunResult struct {
	Title       string
	Summary     string
	Text        string
	OCRText     string
	CleanedText string
	Keywords    []string
	ImageCount  int
	OCRResults  []ocr.Result
	Timings     []StageTiming
}

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jihooni6250/summary/internal/config"
	"github.com/jihooni6250/summary/internal/ocr"
	"github.com/jihooni6250/summary/internal/pdf"
	"github.com/jihooni6250/summary/internal/summarize"
	"github.com/jihooni6250/summary/internal/textproc"
)

// Pipeline wires the extraction, OCR, analysis and summarization stages.
// A pipeline is immutable after construction and safe to reuse across runs.
type Pipeline struct {
	cfg        *config.Config
	engine     *ocr.Engine
	summarizer *summarize.Client
}

// New assembles a pipeline from the configuration, the recognizer and the
// summarization provider. Recognizer and provider are injected so tests
// can substitute fakes.
// A nil provider yields an extract-only pipeline; Run refuses to start on it.
func New(cfg *config.Config, recognizer ocr.Recognizer, provider summarize.Provider) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		engine: ocr.NewEngine(recognizer),
	}
	if provider != nil {
		p.summarizer = summarize.NewClient(provider,
			summarize.WithAttempts(cfg.LLM.MaxAttempts),
			summarize.WithRetryDelay(cfg.LLM.RetryDelay),
			summarize.WithTimeout(cfg.LLM.Timeout),
			summarize.WithOptions(summarize.Options{
				MaxTokens:   cfg.LLM.MaxTokens,
				Temperature: cfg.LLM.Temperature,
			}),
		)
	}
	return p
}

// Run processes one PDF end to end. The only fatal failure is a document
// that cannot be opened; everything downstream degrades to sentinels.
func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if p.summarizer == nil {
		return nil, fmt.Errorf("pipeline has no summarization provider")
	}

	extraction, err := p.Extract(ctx, req)
	if err != nil {
		return nil, err
	}

	timer := newStageTimer()
	timer.begin("summarize")
	extraction.Summary = p.summarizer.Summarize(ctx, summarize.Request{
		Title:    extraction.Title,
		Body:     extraction.CleanedText,
		OCRText:  extraction.OCRText,
		Keywords: extraction.Keywords,
		Emphasis: req.Emphasis,
		Exclude:  req.Exclude,
	})
	timer.end()
	recordTimings(timer)
	extraction.Timings = append(extraction.Timings, timer.timings...)

	slog.Info("pipeline run complete", "path", req.Path,
		"images", extraction.ImageCount, "keywords", len(extraction.Keywords))
	return extraction, nil
}

// Extract performs every stage short of the remote summarization call and
// returns the intermediate artifacts.
func (p *Pipeline) Extract(ctx context.Context, req RunRequest) (*RunResult, error) {
	timer := newStageTimer()

	timer.begin("open")
	doc, err := pdf.Open(req.Path)
	if err != nil {
		documentsProcessed.WithLabelValues("open_failed").Inc()
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer func() { _ = doc.Close() }()

	timer.begin("text")
	text := pdf.ExtractText(doc, req.Keywords)

	timer.begin("title")
	title := pdf.DetectTitle(doc)

	timer.begin("images")
	saveDir := req.SaveDir
	if saveDir == "" {
		saveDir = p.cfg.Extract.SaveDir
	}
	records, err := pdf.ExtractImages(ctx, doc, pdf.ImageOptions{
		Workers: p.cfg.Extract.Workers,
		SaveDir: saveDir,
	})
	if err != nil {
		// Image extraction trouble degrades the digest, it does not
		// abort text-only summarization.
		slog.Warn("image extraction failed, continuing without OCR", "path", req.Path, "error", err)
		records = nil
	}
	imagesExtracted.Add(float64(len(records)))

	timer.begin("ocr")
	ocrResults, ocrText := p.runOCR(ctx, records, req.SkipOCR)

	timer.begin("clean")
	cleaned := textproc.Clean(text + " " + ocrText)

	timer.begin("keywords")
	keywords := textproc.Keywords(cleaned, p.cfg.Keywords.MaxFeatures)
	keywords = append(keywords, req.Keywords...)
	timer.end()

	recordTimings(timer)
	documentsProcessed.WithLabelValues("ok").Inc()
	slog.Debug("extraction complete", "path", req.Path, "stages", timer.String())

	return &RunResult{
		Title:       title,
		Text:        text,
		OCRText:     ocrText,
		CleanedText: cleaned,
		Keywords:    keywords,
		ImageCount:  len(records),
		OCRResults:  ocrResults,
		Timings:     timer.timings,
	}, nil
}

// runOCR recovers text from the extracted images. When skip is set the
// whole stage, preprocessing included, is bypassed.
func (p *Pipeline) runOCR(ctx context.Context, records []pdf.ImageRecord, skip bool) ([]ocr.Result, string) {
	if skip || len(records) == 0 {
		return nil, ""
	}
	results := p.engine.ProcessAll(ctx, records)
	for _, res := range results {
		if res.Failed() {
			ocrSoftFailures.Inc()
		}
	}
	return results, ocr.JoinText(results)
}

func recordTimings(t *stageTimer) {
	for _, st := range t.timings {
		stageDuration.WithLabelValues(st.Stage).Observe(st.Duration.Seconds())
	}
}

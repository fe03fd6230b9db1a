package pipeline

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihooni6250/summary/internal/config"
	"github.com/jihooni6250/summary/internal/ocr"
	"github.com/jihooni6250/summary/internal/pdf"
	"github.com/jihooni6250/summary/internal/summarize"
)

type stubRecognizer struct{}

func (stubRecognizer) Recognize(_ context.Context, _ image.Image, _ ocr.PageSegMode) (string, error) {
	return "", errors.New("no recognizer in tests")
}

// countingRecognizer records how many recognition passes ran.
type countingRecognizer struct {
	calls int
}

func (c *countingRecognizer) Recognize(_ context.Context, _ image.Image, _ ocr.PageSegMode) (string, error) {
	c.calls++
	return "recovered text", nil
}

type stubProvider struct{}

func (stubProvider) Complete(_ context.Context, _ string, _ summarize.Options) (string, error) {
	return "a summary", nil
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		OCR:      config.OCRConfig{Languages: []string{"eng"}},
		Keywords: config.KeywordConfig{MaxFeatures: 10},
		LLM: config.LLMConfig{
			MaxTokens:   500,
			Temperature: 0.7,
			MaxAttempts: 1,
		},
	}
}

func TestExtract_MissingDocument(t *testing.T) {
	p := New(testConfig(), stubRecognizer{}, stubProvider{})

	_, err := p.Extract(context.Background(), RunRequest{Path: "/nonexistent/doc.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening document")
}

func TestRun_MissingDocument(t *testing.T) {
	p := New(testConfig(), stubRecognizer{}, stubProvider{})

	_, err := p.Run(context.Background(), RunRequest{Path: "/nonexistent/doc.pdf"})
	require.Error(t, err)
}

func TestRun_WithoutProviderRefused(t *testing.T) {
	p := New(testConfig(), stubRecognizer{}, nil)

	_, err := p.Run(context.Background(), RunRequest{Path: "whatever.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summarization provider")
}

func TestRunOCR_SkipBypassesRecognition(t *testing.T) {
	rec := &countingRecognizer{}
	p := New(testConfig(), rec, stubProvider{})

	records := []pdf.ImageRecord{
		{Image: image.NewGray(image.Rect(0, 0, 8, 8)), DPI: 300},
	}

	results, text := p.runOCR(context.Background(), records, true)
	assert.Empty(t, results)
	assert.Empty(t, text)
	assert.Zero(t, rec.calls)

	results, text = p.runOCR(context.Background(), records, false)
	require.NotEmpty(t, results)
	assert.NotEmpty(t, text)
	assert.Positive(t, rec.calls)
}

func TestStageTimer_RecordsStagesInOrder(t *testing.T) {
	timer := newStageTimer()
	timer.begin("open")
	timer.begin("text")
	timer.end()

	require.Len(t, timer.timings, 2)
	assert.Equal(t, "open", timer.timings[0].Stage)
	assert.Equal(t, "text", timer.timings[1].Stage)
	for _, st := range timer.timings {
		assert.GreaterOrEqual(t, st.Duration, time.Duration(0))
	}
}

func TestStageTimer_EndWithoutBegin(t *testing.T) {
	timer := newStageTimer()
	timer.end()
	assert.Empty(t, timer.timings)
}

func TestStageTimer_BeginClosesPrevious(t *testing.T) {
	timer := newStageTimer()
	timer.begin("a")
	timer.begin("b")

	// "a" is closed, "b" still open until end.
	require.Len(t, timer.timings, 1)
	assert.Equal(t, "a", timer.timings[0].Stage)

	timer.end()
	require.Len(t, timer.timings, 2)
}

func TestStageTimer_String(t *testing.T) {
	timer := newStageTimer()
	timer.begin("ocr")
	timer.begin("clean")
	timer.end()

	s := timer.String()
	assert.True(t, strings.HasPrefix(s, "ocr: "))
	assert.Contains(t, s, ", clean: ")
}

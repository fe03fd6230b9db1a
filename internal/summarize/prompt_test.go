package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_PlainRequest(t *testing.T) {
	req := Request{
		Title:   "A Study",
		Body:    "body text",
		OCRText: "ocr text",
	}

	got := BuildPrompt(req)
	assert.Equal(t, "Summarize the following text.\nText:\nA Study\n\nbody text\n\nocr text", got)
}

func TestBuildPrompt_EmphasisAndExclude(t *testing.T) {
	req := Request{
		Title:    "Title",
		Body:     "body",
		OCRText:  "ocr",
		Emphasis: []string{"models", "training"},
		Exclude:  []string{"references"},
	}

	got := BuildPrompt(req)
	assert.Contains(t, got, "Emphasize the following topics: models, training.\n")
	assert.Contains(t, got, "Exclude the following topics: references.\n")

	// Instruction first, then emphasis, then exclusion, then the text block.
	assert.Less(t, strings.Index(got, "Summarize"), strings.Index(got, "Emphasize"))
	assert.Less(t, strings.Index(got, "Emphasize"), strings.Index(got, "Exclude"))
	assert.Less(t, strings.Index(got, "Exclude"), strings.Index(got, "Text:"))
}

func TestBuildPrompt_NoOptionalLinesWhenEmpty(t *testing.T) {
	got := BuildPrompt(Request{Title: "t", Body: "b", OCRText: "o"})
	assert.NotContains(t, got, "Emphasize")
	assert.NotContains(t, got, "Exclude")
}

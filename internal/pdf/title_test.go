package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromSpans_NearMaximumSpansMerge(t *testing.T) {
	// Threshold is 0.95 * 24 = 22.8, so both the 24pt and 23pt spans
	// qualify and join in document order.
	spans := []Span{
		{Text: "footer", FontSize: 10},
		{Text: "header", FontSize: 10},
		{Text: "A Study of", FontSize: 24},
		{Text: "Deep Learning", FontSize: 23},
		{Text: "fine print", FontSize: 8},
	}

	assert.Equal(t, "A Study of Deep Learning", titleFromSpans(spans))
}

func TestTitleFromSpans_DocumentOrderWins(t *testing.T) {
	// The 23pt span appears before the absolute maximum; order of
	// appearance is kept rather than sorting by size.
	spans := []Span{
		{Text: "Second Line", FontSize: 23},
		{Text: "First By Size", FontSize: 24},
	}

	assert.Equal(t, "Second Line First By Size", titleFromSpans(spans))
}

func TestTitleFromSpans_SingleSpan(t *testing.T) {
	spans := []Span{
		{Text: "Lonely Title", FontSize: 18},
		{Text: "body text", FontSize: 11},
	}

	assert.Equal(t, "Lonely Title", titleFromSpans(spans))
}

func TestTitleFromSpans_NoSpansReturnsSentinel(t *testing.T) {
	assert.Equal(t, TitleNotFound, titleFromSpans(nil))
}

func TestTitleFromSpans_ZeroSizedSpansReturnSentinel(t *testing.T) {
	spans := []Span{{Text: "ghost", FontSize: 0}}
	assert.Equal(t, TitleNotFound, titleFromSpans(spans))
}

func TestTitleFromSpans_WhitespaceOnlySpansIgnored(t *testing.T) {
	spans := []Span{
		{Text: "   ", FontSize: 24},
		{Text: "Real Title", FontSize: 23},
	}

	assert.Equal(t, "Real Title", titleFromSpans(spans))
}

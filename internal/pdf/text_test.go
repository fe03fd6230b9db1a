package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText_KeywordFiltering(t *testing.T) {
	pages := []pageBlocks{
		{num: 1, blocks: []Block{
			{Text: "Alpha beta", Y: 700, X: 50},
			{Text: "Gamma delta", Y: 650, X: 50},
		}},
	}

	got := renderText(pages, []string{"beta"})
	assert.Equal(t, "==== Page 1 ====\nAlpha beta", got)
}

func TestRenderText_NoKeywordKeepsEverything(t *testing.T) {
	pages := []pageBlocks{
		{num: 1, blocks: []Block{{Text: "Alpha beta"}, {Text: "Gamma delta"}}},
		{num: 2, blocks: []Block{{Text: "Epsilon"}}},
	}

	got := renderText(pages, nil)
	assert.Equal(t, "==== Page 1 ====\nAlpha beta Gamma delta\n\n==== Page 2 ====\nEpsilon", got)
}

func TestRenderText_AbsentKeywordReturnsSentinel(t *testing.T) {
	pages := []pageBlocks{
		{num: 1, blocks: []Block{{Text: "Alpha beta"}, {Text: "Gamma delta"}}},
	}

	got := renderText(pages, []string{"zeta"})
	assert.Equal(t, NoMatchSentinel, got)
}

func TestRenderText_PageWithoutMatchesIsOmitted(t *testing.T) {
	pages := []pageBlocks{
		{num: 1, blocks: []Block{{Text: "nothing relevant"}}},
		{num: 2, blocks: []Block{{Text: "the beta section"}}},
	}

	got := renderText(pages, []string{"BETA"})
	assert.Equal(t, "==== Page 2 ====\nthe beta section", got)
}

func TestRenderText_EmptyDocument(t *testing.T) {
	assert.Equal(t, NoMatchSentinel, renderText(nil, nil))
}

func TestFilterBlocks_DropsEmptyBlocks(t *testing.T) {
	blocks := []Block{{Text: "  "}, {Text: "kept"}, {Text: ""}}

	retained := filterBlocks(blocks, nil)
	require.Len(t, retained, 1)
	assert.Equal(t, "kept", retained[0].Text)
}

func TestContainsAny_CaseInsensitive(t *testing.T) {
	assert.True(t, containsAny("The Quick Fox", []string{"quick"}))
	assert.True(t, containsAny("the quick fox", []string{"QUICK"}))
	assert.False(t, containsAny("the quick fox", []string{"wolf"}))
	assert.False(t, containsAny("anything", []string{""}))
}

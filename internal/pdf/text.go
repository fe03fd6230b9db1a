package pdf

import (
	"fmt"
	"strings"
)

// NoMatchSentinel is returned when keyword filtering leaves no text in the
// entire document. Callers must treat it as a degraded result, not an error.
const NoMatchSentinel = "no text matched the given keywords"

// pageBlocks is one page's ordered blocks, keyed by 1-based page number.
type pageBlocks struct {
	num    int
	blocks []Block
}

// ExtractText returns the document's text ordered top-to-bottom,
// left-to-right within each page. When keywords are given, only blocks
// containing at least one keyword (case-insensitive substring match) are
// kept, and pages without any retained block are omitted. Each included
// page is prefixed with a page marker; pages are joined with a blank line.
func ExtractText(doc *Document, keywords []string) string {
	var pages []pageBlocks
	for num := 1; num <= doc.NumPages(); num++ {
		page := doc.page(num)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, pageBlocks{num: num, blocks: buildBlocks(pageSpans(page))})
	}
	return renderText(pages, keywords)
}

// renderText filters and assembles already-ordered page blocks.
func renderText(pages []pageBlocks, keywords []string) string {
	var rendered []string
	for _, page := range pages {
		retained := filterBlocks(page.blocks, keywords)
		if len(retained) == 0 {
			continue
		}
		texts := make([]string, 0, len(retained))
		for _, b := range retained {
			texts = append(texts, b.Text)
		}
		rendered = append(rendered,
			fmt.Sprintf("==== Page %d ====\n%s", page.num, strings.Join(texts, " ")))
	}
	if len(rendered) == 0 {
		return NoMatchSentinel
	}
	return strings.Join(rendered, "\n\n")
}

// filterBlocks drops empty blocks and, when keywords are supplied, blocks
// that contain none of them.
func filterBlocks(blocks []Block, keywords []string) []Block {
	retained := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		if len(keywords) > 0 && !containsAny(text, keywords) {
			continue
		}
		retained = append(retained, b)
	}
	return retained
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

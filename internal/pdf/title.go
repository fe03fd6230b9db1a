package pdf

import "strings"

// TitleNotFound is returned when the first page has no qualifying spans.
const TitleNotFound = "title not found"

// titleSizeRatio keeps spans within 5% of the largest observed font size,
// so a title wrapped onto a slightly smaller second line is still included.
const titleSizeRatio = 0.95

// DetectTitle scans the first page for the maximum font size and joins, in
// document order, every span whose size is within titleSizeRatio of it.
func DetectTitle(doc *Document) string {
	if doc.NumPages() == 0 {
		return TitleNotFound
	}
	first := doc.page(1)
	if first.V.IsNull() {
		return TitleNotFound
	}
	return titleFromSpans(pageSpans(first))
}

// titleFromSpans implements the font-size heuristic over already-extracted
// spans. Split out so the heuristic can be exercised without a document.
func titleFromSpans(spans []Span) string {
	maxSize := 0.0
	for _, s := range spans {
		if s.FontSize > maxSize {
			maxSize = s.FontSize
		}
	}
	if maxSize <= 0 {
		return TitleNotFound
	}

	threshold := maxSize * titleSizeRatio
	var parts []string
	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if text != "" && s.FontSize >= threshold {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return TitleNotFound
	}
	return strings.Join(parts, " ")
}

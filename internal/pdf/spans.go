package pdf

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dslipak/pdf"
)

// Span is a run of text drawn with a single font size at one position.
// Coordinates are in PDF user space, where Y grows upward from the bottom
// of the page.
type Span struct {
	Text     string
	FontSize float64
	X, Y     float64
}

// Block is a line of spans merged into one string, positioned by its
// left-most span.
type Block struct {
	Text string
	X, Y float64
}

// lineTolerance is the maximum vertical distance, in points, between two
// spans considered to be on the same line.
const lineTolerance = 2.0

// pageSpans converts raw content-stream text items into spans. Consecutive
// items on the same line with the same font size are merged, inserting a
// space when the horizontal gap between them exceeds a third of the font
// size. A malformed content stream yields no spans rather than a failure.
func pageSpans(p pdf.Page) (spans []Span) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
		}
	}()

	content := p.Content()
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		if n := len(spans); n > 0 {
			prev := &spans[n-1]
			sameLine := abs(prev.Y-t.Y) <= lineTolerance
			sameSize := prev.FontSize == t.FontSize
			if sameLine && sameSize {
				gap := t.X - (prev.X + prev.W())
				if gap > t.FontSize/3 {
					prev.Text += " "
				}
				prev.Text += t.S
				continue
			}
		}
		spans = append(spans, Span{Text: t.S, FontSize: t.FontSize, X: t.X, Y: t.Y})
	}
	return spans
}

// W estimates the width consumed by the span so far. The underlying reader
// reports per-item advance widths only for the last merged item, so this is
// an approximation good enough for gap detection. Counted in runes, not
// bytes, so multi-byte scripts like Hangul are not overestimated.
func (s *Span) W() float64 {
	return float64(utf8.RuneCountInString(s.Text)) * s.FontSize * 0.5
}

// buildBlocks groups spans into lines and orders them top-to-bottom,
// left-to-right. PDF user space has its origin at the bottom left, so the
// vertical sort is by Y descending.
func buildBlocks(spans []Span) []Block {
	type line struct {
		y     float64
		parts []Span
	}

	var lines []*line
	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		var target *line
		for _, l := range lines {
			if abs(l.y-s.Y) <= lineTolerance {
				target = l
				break
			}
		}
		if target == nil {
			target = &line{y: s.Y}
			lines = append(lines, target)
		}
		target.parts = append(target.parts, s)
	}

	blocks := make([]Block, 0, len(lines))
	for _, l := range lines {
		sort.SliceStable(l.parts, func(i, j int) bool { return l.parts[i].X < l.parts[j].X })
		texts := make([]string, 0, len(l.parts))
		for _, p := range l.parts {
			texts = append(texts, strings.TrimSpace(p.Text))
		}
		blocks = append(blocks, Block{
			Text: strings.Join(texts, " "),
			X:    l.parts[0].X,
			Y:    l.y,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Y != blocks[j].Y {
			return blocks[i].Y > blocks[j].Y
		}
		return blocks[i].X < blocks[j].X
	})
	return blocks
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

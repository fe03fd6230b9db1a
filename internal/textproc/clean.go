// Package textproc cleans extracted text and ranks its keywords.
package textproc

import (
	"regexp"
	"strings"
)

var (
	pageNumberRe = regexp.MustCompile(`\bPage\s?\d+\b`)
	formulaRe    = regexp.MustCompile(`\$[^$]*\$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean strips page-number artifacts and inline formula spans, then
// collapses whitespace runs. Pure; accepts any input including empty.
func Clean(text string) string {
	text = pageNumberRe.ReplaceAllString(text, "")
	text = formulaRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

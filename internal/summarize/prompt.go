// Package summarize builds summarization prompts and issues them to a
// chat-completion service with bounded retries.
package summarize

import "strings"

// Request holds everything a summary prompt is assembled from. Requests
// are built fresh per invocation and never persisted.
type Request struct {
	Title    string
	Body     string
	OCRText  string
	Keywords []string
	Emphasis []string
	Exclude  []string
}

// BuildPrompt renders the request into a single prompt string: the
// instruction line, optional emphasis and exclusion lines, then title,
// body and OCR text separated by blank lines.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Summarize the following text.\n")
	if len(req.Emphasis) > 0 {
		b.WriteString("Emphasize the following topics: ")
		b.WriteString(strings.Join(req.Emphasis, ", "))
		b.WriteString(".\n")
	}
	if len(req.Exclude) > 0 {
		b.WriteString("Exclude the following topics: ")
		b.WriteString(strings.Join(req.Exclude, ", "))
		b.WriteString(".\n")
	}
	b.WriteString("Text:\n")
	b.WriteString(req.Title)
	b.WriteString("\n\n")
	b.WriteString(req.Body)
	b.WriteString("\n\n")
	b.WriteString(req.OCRText)
	return b.String()
}

package ocr

import "strings"

// ScoreFunc rates a recognition candidate. Length is the primary key and
// noise the tie-breaking penalty: among candidates of equal length the one
// with fewer noise characters wins.
type ScoreFunc func(candidate string) (length, noise int)

// DefaultScore counts the trimmed candidate length and the number of runes
// that are neither ASCII alphanumerics, Hangul syllables nor whitespace.
func DefaultScore(candidate string) (int, int) {
	trimmed := strings.TrimSpace(candidate)
	noise := 0
	for _, r := range candidate {
		if isCleanRune(r) {
			continue
		}
		noise++
	}
	return len([]rune(trimmed)), noise
}

func isCleanRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= '가' && r <= '힣':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
		return true
	}
	return false
}

// SelectBest discards empty candidates and picks the one with the highest
// (length, -noise) score. Earlier candidates win exact ties. The boolean is
// false when every candidate is empty or whitespace-only.
func SelectBest(candidates []string, score ScoreFunc) (string, bool) {
	if score == nil {
		score = DefaultScore
	}

	best := ""
	bestLen, bestNoise := -1, 0
	found := false

	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		length, noise := score(c)
		if !found || length > bestLen || (length == bestLen && noise < bestNoise) {
			best, bestLen, bestNoise = c, length, noise
			found = true
		}
	}
	return best, found
}

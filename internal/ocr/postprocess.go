package ocr

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Postprocess cleans a selected recognition candidate: whitespace runs are
// collapsed, split Hangul jamo pairs are recomposed into syllables,
// visually-confusable letters are normalized to the digits they usually
// stand for, and remaining newlines become spaces.
func Postprocess(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = composeJamo(text)
	text = strings.Map(normalizeConfusable, text)
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}

// Hangul syllable composition constants (Unicode chapter 3.12).
const (
	syllableBase = 0xAC00
	vowelBase    = 'ㅏ' // U+314F, first compatibility vowel
	vowelCount   = 21
	tailCount    = 28
)

// leadIndex maps compatibility-jamo consonants to their choseong index.
// Cluster consonants (like ㄳ) cannot lead a syllable and are absent.
var leadIndex = map[rune]int{
	'ㄱ': 0, 'ㄲ': 1, 'ㄴ': 2, 'ㄷ': 3, 'ㄸ': 4,
	'ㄹ': 5, 'ㅁ': 6, 'ㅂ': 7, 'ㅃ': 8, 'ㅅ': 9,
	'ㅆ': 10, 'ㅇ': 11, 'ㅈ': 12, 'ㅉ': 13, 'ㅊ': 14,
	'ㅋ': 15, 'ㅌ': 16, 'ㅍ': 17, 'ㅎ': 18,
}

// composeJamo merges adjacent consonant/vowel compatibility-jamo pairs,
// which recognition tends to emit for decomposed syllables, back into
// composed syllable code points.
func composeJamo(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			lead, isLead := leadIndex[runes[i]]
			vowel := runes[i+1]
			if isLead && vowel >= vowelBase && vowel < vowelBase+vowelCount {
				syllable := syllableBase + (lead*vowelCount+int(vowel-vowelBase))*tailCount
				out = append(out, rune(syllable))
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return string(out)
}

// normalizeConfusable maps letters that OCR commonly produces in place of
// digits. Destructive for prose but a net win on the technical content this
// pipeline targets.
func normalizeConfusable(r rune) rune {
	switch r {
	case 'o', 'O':
		return '0'
	case 'l', 'I':
		return '1'
	}
	return r
}

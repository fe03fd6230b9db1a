package textproc

import (
	"regexp"
	"sort"

	"golang.org/x/text/cases"
)

// DefaultMaxFeatures bounds the keyword list when callers pass no limit.
const DefaultMaxFeatures = 10

// tokenRe matches terms of at least two letters or digits, the same shape
// a TF-IDF vectorizer's default token pattern keeps.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// Keywords ranks the distinct terms of text by TF-IDF weight and returns
// up to maxFeatures of them, highest weight first. The text is its own
// single-document corpus, so the inverse-document-frequency factor is
// constant and the ranking reduces to term frequency; ties are broken by
// first appearance. Empty input yields an empty list.
func Keywords(text string, maxFeatures int) []string {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	type termStat struct {
		term  string
		count int
		first int
	}

	stats := make(map[string]*termStat)
	order := make([]*termStat, 0)

	// Casers carry internal state and are not safe for concurrent use, so
	// each call gets its own.
	caser := cases.Fold()
	for i, tok := range tokenRe.FindAllString(text, -1) {
		term := caser.String(tok)
		if st, ok := stats[term]; ok {
			st.count++
			continue
		}
		st := &termStat{term: term, count: 1, first: i}
		stats[term] = st
		order = append(order, st)
	}

	// Single-document corpus: idf is identical for every term, so weight
	// ordering is term-frequency ordering.
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > maxFeatures {
		order = order[:maxFeatures]
	}
	keywords := make([]string, 0, len(order))
	for _, st := range order {
		keywords = append(keywords, st.term)
	}
	return keywords
}

package query

import (
	"strings"
	"unicode"
)

// Fixed keyword vocabularies. Matching is case-insensitive; single words
// match on whole tokens so that e.g. "email" never triggers the "ai" sector,
// while phrases match as substrings of the lowercased query.
var (
	// Sector vocabulary in priority order; only the first hit is used.
	sectorVocab = []string{"fintech", "saas", "ai", "crypto", "health", "climate"}

	largenessWords = []string{"large", "largest", "big", "biggest"}
	speedWords     = []string{"fast", "fastest", "quick", "quickest", "quickly"}
	urgencyWords   = []string{"email", "contact", "outreach"}
	urgencyPhrases = []string{"this week", "reach out"}
)

// features is the result of scanning a query once against the vocabularies.
type features struct {
	sector  string // first sector vocabulary hit, "" if none
	large   bool
	fast    bool
	hot     bool
	warm    bool
	cold    bool
	urgency bool
}

func scanQuery(queryText string) features {
	q := strings.ToLower(queryText)
	tokens := tokenize(q)

	var f features
	for _, kw := range sectorVocab {
		if tokens[kw] {
			f.sector = kw
			break
		}
	}
	f.large = anyToken(tokens, largenessWords)
	f.fast = anyToken(tokens, speedWords)
	f.hot = tokens["hot"]
	f.warm = tokens["warm"]
	f.cold = tokens["cold"]

	f.urgency = anyToken(tokens, urgencyWords)
	for _, phrase := range urgencyPhrases {
		if strings.Contains(q, phrase) {
			f.urgency = true
		}
	}

	return f
}

func tokenize(q string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[tok] = true
	}
	return tokens
}

func anyToken(tokens map[string]bool, words []string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}

package overlap

import (
	"strings"
	"unicode"
)

// minUsableLen is the floor below which an input is treated as noise and
// dropped rather than compared (or errored).
const minUsableLen = 3

// wordPunct is the minor punctuation stripped from a token's edges before
// set membership is decided. A trailing comma must not break an otherwise
// common word run.
const wordPunct = ".,;:!?\"'`()[]{}<>"

// inputText is one comparison input after normalization. The original
// (trimmed, case-preserved) form is kept for output assembly; the normalized
// form drives all comparisons.
type inputText struct {
	original   string
	normalized string
}

// prepare filters the raw inputs and builds the word-case map: normalized
// word -> an original-cased exemplar, used only to restore human-readable
// casing in the output. Last writer wins; casing is cosmetic.
func prepare(texts []string) ([]inputText, map[string]string) {
	inputs := make([]inputText, 0, len(texts))
	caseMap := make(map[string]string)

	for _, raw := range texts {
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) < minUsableLen {
			continue
		}
		in := inputText{
			original:   trimmed,
			normalized: strings.ToLower(trimmed),
		}
		inputs = append(inputs, in)

		for _, tok := range strings.Fields(in.original) {
			word := strings.Trim(tok, wordPunct)
			if word == "" {
				continue
			}
			caseMap[strings.ToLower(word)] = word
		}
	}
	return inputs, caseMap
}

// normalizeWord reduces a whitespace-delimited token to the form used for
// set membership: edge punctuation stripped, lowercased.
func normalizeWord(tok string) string {
	return strings.ToLower(strings.Trim(tok, wordPunct))
}

// displayWord restores the original casing of a normalized word via the
// word-case map, falling back to the normalized form itself.
func displayWord(norm string, caseMap map[string]string) string {
	if cased, ok := caseMap[norm]; ok {
		return cased
	}
	return norm
}

// whitespaceRatio reports the fraction of a candidate's runes that are
// whitespace. Candidates above maxWhitespaceRatio are runs of separators,
// not shared content.
func whitespaceRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total, spaces := 0, 0
	for _, r := range s {
		total++
		if unicode.IsSpace(r) {
			spaces++
		}
	}
	return float64(spaces) / float64(total)
}

// splitSentences cuts a text into sentence-like units on sentence-terminal
// punctuation and line breaks. Phrase runs never cross these boundaries.
func splitSentences(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n', '\r':
			return true
		}
		return false
	})
}

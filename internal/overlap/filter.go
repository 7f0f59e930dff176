package overlap

import (
	"sort"
	"strings"
)

// filterContained removes candidates that are literal substrings of a longer
// surviving candidate. Sorting longest-first means each candidate only needs
// checking against the already-accepted (strictly longer or equal) set, never
// against the whole candidate list, which keeps the filter well under
// all-pairs quadratic cost for large candidate counts.
//
// Once three or more clearly substantial matches are in and the joined
// output would already exceed the result budget, remaining shorter
// candidates stop being admitted. Every admission decision is made on
// (length, redundancy) grounds only, never on input position.
func filterContained(cands []candidate) []candidate {
	if len(cands) == 0 {
		return nil
	}

	sorted := make([]candidate, len(cands))
	copy(sorted, cands)
	// Equal lengths order lexicographically by normalized key so that the
	// output does not depend on which input text was seen first.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].length() != sorted[j].length() {
			return sorted[i].length() > sorted[j].length()
		}
		return sorted[i].key < sorted[j].key
	})

	accepted := make([]candidate, 0, len(sorted))
	substantial := 0
	total := 0

	for _, c := range sorted {
		if substantial >= minTargetMatches && total+c.length()+1 > maxResultLen {
			break
		}
		redundant := false
		for _, a := range accepted {
			if strings.Contains(a.text, c.text) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		accepted = append(accepted, c)
		total += c.length() + 1
		if c.length() > substantialLen {
			substantial++
		}
	}
	return accepted
}

// fallbackCandidates is the character-level stage: substrings of decreasing
// length, taken from the shortest input, that occur in every input. It runs
// only when the word stage produced nothing, trading precision for the
// guarantee that shared sub-word content (IDs, symbols, punctuation-delimited
// tokens) is still surfaced.
func fallbackCandidates(inputs []inputText) []candidate {
	if len(inputs) == 0 {
		return nil
	}

	// The source text is the shortest input; among equally short inputs the
	// lexicographically smallest normalized form wins, so the result cannot
	// depend on input order.
	src := inputs[0]
	for _, in := range inputs[1:] {
		if len(in.normalized) < len(src.normalized) ||
			(len(in.normalized) == len(src.normalized) && in.normalized < src.normalized) {
			src = in
		}
	}

	runes := []rune(src.original)
	maxLen := maxPhraseLen
	if len(runes) < maxLen {
		maxLen = len(runes)
	}

	var out []candidate
	total := 0
	for length := maxLen; length >= fallbackMinLen; length-- {
		for i := 0; i+length <= len(runes); i++ {
			sub := strings.TrimSpace(string(runes[i : i+length]))
			if len(sub) < fallbackMinLen {
				continue
			}
			if whitespaceRatio(sub) > maxWhitespaceRatio {
				continue
			}
			lower := strings.ToLower(sub)
			if coveredBy(out, lower) {
				continue
			}
			if !inEveryInput(inputs, lower) {
				continue
			}
			out = append(out, candidate{text: sub, key: lower})
			total += len(sub)
			// Enough material for a full result: stop descending.
			if len(out) >= minTargetMatches && total >= maxResultLen {
				return out
			}
		}
	}
	return out
}

func coveredBy(accepted []candidate, lower string) bool {
	for _, a := range accepted {
		if strings.Contains(a.key, lower) {
			return true
		}
	}
	return false
}

func inEveryInput(inputs []inputText, lower string) bool {
	for _, in := range inputs {
		if !strings.Contains(in.normalized, lower) {
			return false
		}
	}
	return true
}

package overlap

import (
	"sort"
	"strings"
)

// candidate is a phrase or substring considered for the final result.
type candidate struct {
	// text is the display form, with casing restored from the word-case
	// map (phrase stage) or taken verbatim from an input (fallback stage).
	text string
	// key is the normalized form used to coalesce identical candidates
	// found in different texts.
	key string
}

func (c candidate) length() int { return len(c.text) }

// phraseCandidates scans every sentence of every input for contiguous runs
// of words that are all members of the common-word set. A run closes when a
// word outside the set appears or the sentence ends; it becomes a candidate
// if its character length lies within [minPhraseLen, maxPhraseLen] and it is
// not mostly whitespace. Identical runs found in multiple texts coalesce
// into a single candidate.
func phraseCandidates(inputs []inputText, common map[string]struct{}, caseMap map[string]string) []candidate {
	var out []candidate
	seen := make(map[string]struct{})

	for _, in := range inputs {
		for _, sentence := range splitSentences(in.original) {
			var run []string
			flush := func() {
				if len(run) == 0 {
					return
				}
				addPhrase(run, caseMap, seen, &out)
				run = run[:0]
			}
			for _, tok := range strings.Fields(sentence) {
				w := normalizeWord(tok)
				if _, ok := common[w]; ok {
					run = append(run, w)
					continue
				}
				flush()
			}
			flush()
		}
	}
	return out
}

func addPhrase(run []string, caseMap map[string]string, seen map[string]struct{}, out *[]candidate) {
	key := strings.Join(run, " ")
	if _, dup := seen[key]; dup {
		return
	}

	display := make([]string, len(run))
	for i, w := range run {
		display[i] = displayWord(w, caseMap)
	}
	text := strings.Join(display, " ")

	if len(text) < minPhraseLen || len(text) > maxPhraseLen {
		return
	}
	if whitespaceRatio(text) > maxWhitespaceRatio {
		return
	}

	seen[key] = struct{}{}
	*out = append(*out, candidate{text: text, key: key})
}

// assemble orders the accepted matches and, when the result is sparse,
// pads it with standalone common words that never made it into a phrase, so
// thin results are not emptier than they need to be.
func assemble(matches []candidate, common map[string]struct{}, caseMap map[string]string) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.text)
	}

	if len(out) >= minTargetMatches || len(common) == 0 {
		return out
	}

	standalone := make([]string, 0, len(common))
	for w := range common {
		cased := displayWord(w, caseMap)
		covered := false
		for _, m := range out {
			if strings.Contains(strings.ToLower(m), w) {
				covered = true
				break
			}
		}
		if !covered {
			standalone = append(standalone, cased)
		}
	}

	// Longest first, then lexicographic: deterministic and independent of
	// both map iteration and input order.
	sort.Slice(standalone, func(i, j int) bool {
		if len(standalone[i]) != len(standalone[j]) {
			return len(standalone[i]) > len(standalone[j])
		}
		return standalone[i] < standalone[j]
	})

	for _, w := range standalone {
		if len(out) >= minTargetMatches {
			break
		}
		out = append(out, w)
	}
	return out
}

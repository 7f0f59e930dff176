// Package overlap extracts the content that a set of free-form texts have in
// common, so callers can highlight shared phrasing versus variant-specific
// differences (e.g. "these three prompt variants share this boilerplate, only
// this clause differs").
//
// The engine runs a two-stage pipeline:
//
//  1. Word stage: intersect the normalized word sets of all inputs, then scan
//     each text's sentences for contiguous runs of common words ("phrases").
//     Phrases that pass length and whitespace-density checks survive a
//     containment filter that drops any phrase literally contained in a
//     longer surviving phrase.
//  2. Character stage (fallback): only when the word stage yields nothing,
//     search for raw substrings common to every input. This surfaces shared
//     tokens that do not tokenize as words (numeric IDs, symbols, mixed
//     scripts).
//
// Every call is a pure function of its inputs: no I/O, no shared state, no
// locking needed under concurrent use. The engine never fails: unusable
// input degrades to an empty result, never to an error.
package overlap

import "strings"

// Tuning constants. These are deliberate compile-time choices, not knobs:
// the output contract depends on them.
const (
	// minWordLen excludes very short words ("a", "to") from the set
	// intersection; they produce noisy matches. The words still appear
	// inside phrases, they just cannot anchor one.
	minWordLen = 3

	// Accepted phrase character-length bounds.
	minPhraseLen = 12
	maxPhraseLen = 120

	// maxWhitespaceRatio rejects candidates that are mostly separator
	// characters rather than real words.
	maxWhitespaceRatio = 0.5

	// largeInputThreshold switches the set intersection to a
	// smallest-set-first strategy. Performance only: results are identical
	// to the small-input path.
	largeInputThreshold = 10

	// Result assembly: pad sparse results up to minTargetMatches using
	// standalone common words, and cap the joined output at maxResultLen
	// by dropping whole matches (never cutting mid-phrase).
	minTargetMatches = 3
	maxResultLen     = 250

	// substantialLen marks a match as clearly substantial for the
	// containment filter's early-stop rule.
	substantialLen = 15

	// fallbackMinLen is the shortest substring the character stage will
	// surface. Below this everything is noise, by the same reasoning as
	// minWordLen.
	fallbackMinLen = 3
)

// FindCommonSubstrings returns a single human-readable string containing the
// content shared by every usable input text, or "" when nothing is shared.
//
// Blank entries and entries of two characters or fewer are dropped, not
// errored. Zero usable texts yield ""; a single usable text is returned
// verbatim (trimmed); the common content of one text is the text itself.
//
// The result is independent of input order.
func FindCommonSubstrings(texts []string) string {
	return joinMatches(CommonPhrases(texts))
}

// CommonPhrases is FindCommonSubstrings before the final join: the ordered
// (longest-first) list of shared phrases or substrings. Renderers that
// highlight matches inside the original texts need the individual phrases
// rather than the joined string.
func CommonPhrases(texts []string) []string {
	inputs, caseMap := prepare(texts)
	switch len(inputs) {
	case 0:
		return nil
	case 1:
		return []string{inputs[0].original}
	}

	common := commonWordSet(inputs)

	var matches []candidate
	if len(common) > 0 {
		matches = filterContained(phraseCandidates(inputs, common, caseMap))
	}
	if len(matches) == 0 {
		// No shared whole words (or none formed a qualifying phrase):
		// fall back to raw character comparison.
		matches = filterContained(fallbackCandidates(inputs))
	}

	return assemble(matches, common, caseMap)
}

// CommonWords returns the normalized words shared by every usable input,
// mapped to an original-cased exemplar. It exposes the intersection stage on
// its own for callers that want word-level statistics; nil when fewer than
// two usable texts remain (nothing to intersect).
func CommonWords(texts []string) map[string]string {
	inputs, caseMap := prepare(texts)
	if len(inputs) < 2 {
		return nil
	}
	common := commonWordSet(inputs)
	if len(common) == 0 {
		return nil
	}
	out := make(map[string]string, len(common))
	for w := range common {
		out[w] = displayWord(w, caseMap)
	}
	return out
}

// joinMatches joins assembled matches with single spaces, enforcing the
// overall result budget by dropping whole matches that no longer fit.
func joinMatches(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	total := 0
	for _, m := range matches {
		need := len(m)
		if total > 0 {
			need++ // joining space
		}
		if total > 0 && total+need > maxResultLen {
			continue
		}
		if total > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m)
		total += need
	}
	return strings.TrimSpace(b.String())
}

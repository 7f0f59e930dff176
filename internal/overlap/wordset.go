package overlap

import "strings"

// wordSet returns the set of normalized words in a text that are eligible
// for intersection (length >= minWordLen). Short words stay in the text;
// they are only excluded from the intersection computation.
func wordSet(in inputText) map[string]struct{} {
	fields := strings.Fields(in.normalized)
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		w := strings.Trim(tok, wordPunct)
		if len(w) < minWordLen {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// commonWordSet computes the words common to every input as an incremental
// fold: seed with one text's set, shrink it against each remaining text, and
// stop the moment it is empty, since the final intersection is already known.
// The result is pure set semantics, independent of input order.
func commonWordSet(inputs []inputText) map[string]struct{} {
	if len(inputs) == 0 {
		return nil
	}

	// For large input counts, seeding from the smallest set minimizes the
	// membership probes in every later round. Results are identical to the
	// straight fold; only the work order changes.
	if len(inputs) >= largeInputThreshold {
		return commonWordSetLarge(inputs)
	}

	common := wordSet(inputs[0])
	for _, in := range inputs[1:] {
		if len(common) == 0 {
			return common
		}
		next := wordSet(in)
		for w := range common {
			if _, ok := next[w]; !ok {
				delete(common, w)
			}
		}
	}
	return common
}

func commonWordSetLarge(inputs []inputText) map[string]struct{} {
	sets := make([]map[string]struct{}, len(inputs))
	smallest := 0
	for i, in := range inputs {
		sets[i] = wordSet(in)
		if len(sets[i]) < len(sets[smallest]) {
			smallest = i
		}
	}

	common := sets[smallest]
	for i, set := range sets {
		if i == smallest {
			continue
		}
		if len(common) == 0 {
			return common
		}
		for w := range common {
			if _, ok := set[w]; !ok {
				delete(common, w)
			}
		}
	}
	return common
}

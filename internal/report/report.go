// Package report turns an engine run into a persistable comparison report:
// the shared content plus a quantitative similarity signal, so sparse shared
// strings still carry a usable number.
package report

import (
	"strings"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"

	"promptlens/internal/overlap"
)

// Report is the outcome of comparing one set of prompt variants.
type Report struct {
	ID              string
	Name            string
	CreatedAt       time.Time
	InputCount      int
	Shared          string
	CommonWordCount int
	// Similarity is the mean pairwise Jaro-Winkler score across the usable
	// inputs, in [0, 1].
	Similarity float64
}

// Build runs the overlap engine over the texts and assembles a report.
func Build(name string, texts []string) Report {
	usable := make([]string, 0, len(texts))
	for _, t := range texts {
		if trimmed := strings.TrimSpace(t); len(trimmed) > 2 {
			usable = append(usable, trimmed)
		}
	}

	return Report{
		ID:              uuid.NewString(),
		Name:            name,
		CreatedAt:       time.Now().UTC(),
		InputCount:      len(usable),
		Shared:          overlap.FindCommonSubstrings(texts),
		CommonWordCount: len(overlap.CommonWords(texts)),
		Similarity:      meanPairwiseSimilarity(usable),
	}
}

// meanPairwiseSimilarity averages Jaro-Winkler over every input pair,
// case-insensitively. One usable input scores a degenerate 1; zero score 0.
func meanPairwiseSimilarity(texts []string) float64 {
	switch len(texts) {
	case 0:
		return 0
	case 1:
		return 1
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(texts); i++ {
		for j := i + 1; j < len(texts); j++ {
			sum += matchr.JaroWinkler(strings.ToLower(texts[i]), strings.ToLower(texts[j]), false)
			pairs++
		}
	}
	return sum / float64(pairs)
}

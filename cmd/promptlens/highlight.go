package main

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sharedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

type span struct{ start, end int }

// highlight renders a variant with every shared phrase emphasized. Longer
// phrases are applied first so a short phrase never splits the styling of a
// longer one containing it.
func highlight(text string, phrases []string) string {
	sorted := append([]string(nil), phrases...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	var spans []span

	lower := strings.ToLower(text)
	for _, p := range sorted {
		needle := strings.ToLower(p)
		if needle == "" {
			continue
		}
		from := 0
		for {
			idx := strings.Index(lower[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(needle)
			from = end
			if overlapsAny(spans, start, end) {
				continue
			}
			spans = append(spans, span{start, end})
		}
	}

	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(text[prev:sp.start])
		b.WriteString(sharedStyle.Render(text[sp.start:sp.end]))
		prev = sp.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

func overlapsAny(spans []span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.end && sp.start < end {
			return true
		}
	}
	return false
}

// Package thread models ordered sequences of labeled message segments (role
// plus body) and extracts the prefix they share. Bodies may be flat text or a
// list of parts; comparison always happens on the flattened text via the
// overlap engine.
package thread

import (
	"strings"

	"promptlens/internal/overlap"
)

// Body is the content of a segment: either flat text or a list of parts.
// The two shapes mirror how upstream stores message content (a scalar or a
// list of content blocks).
type Body interface {
	// Flatten returns the plain-text form used for comparison.
	Flatten() string

	isBody()
}

// Text is a flat string body.
type Text string

// Flatten returns the text itself.
func (t Text) Flatten() string { return string(t) }

func (Text) isBody() {}

// Parts is a multi-part body; parts flatten to newline-joined text.
type Parts []string

// Flatten joins the parts with newlines.
func (p Parts) Flatten() string { return strings.Join(p, "\n") }

func (Parts) isBody() {}

// Segment is one labeled turn in a sequence: a role tag and a body.
type Segment struct {
	Role string
	Body Body
}

// flatten tolerates a nil body.
func (s Segment) flatten() string {
	if s.Body == nil {
		return ""
	}
	return s.Body.Flatten()
}

// SharedPrefix returns the leading segments common to every sequence.
//
// Segments are compared strictly by position, up to the length of the
// shortest sequence. A position survives only when every sequence carries the
// same role there and the bodies still share content once reduced by
// overlap.FindCommonSubstrings; the reduced text becomes the result body.
// The walk stops at the first position that disagrees; later agreement
// cannot resurrect a broken prefix.
//
// Zero sequences yield nil. A single sequence is returned as-is (copied):
// with nothing to compare against, its own segments are the shared prefix.
func SharedPrefix(sequences [][]Segment) []Segment {
	switch len(sequences) {
	case 0:
		return nil
	case 1:
		return append([]Segment(nil), sequences[0]...)
	}

	shortest := len(sequences[0])
	for _, seq := range sequences[1:] {
		if len(seq) < shortest {
			shortest = len(seq)
		}
	}

	var prefix []Segment
	for i := 0; i < shortest; i++ {
		role := sequences[0][i].Role
		bodies := make([]string, 0, len(sequences))
		agree := true
		for _, seq := range sequences {
			if seq[i].Role != role {
				agree = false
				break
			}
			bodies = append(bodies, seq[i].flatten())
		}
		if !agree {
			break
		}

		common := overlap.FindCommonSubstrings(bodies)
		if common == "" {
			break
		}
		prefix = append(prefix, Segment{Role: role, Body: Text(common)})
	}
	return prefix
}

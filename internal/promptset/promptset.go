// Package promptset loads prompt-set files: YAML documents holding the
// variant texts (and optionally conversations) to compare. This is the
// on-disk boundary of the data-fetch layer; the engine itself never touches
// files.
package promptset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"promptlens/internal/thread"
)

// Set is a named collection of prompt variants and, optionally, labeled
// conversations whose shared prefix can be extracted.
type Set struct {
	Name          string
	Variants      []string
	Conversations [][]thread.Segment
}

// File-level YAML shapes. Message content may be a scalar or a list of
// strings, so it is decoded through a yaml.Node.
type fileSet struct {
	Name          string             `yaml:"name"`
	Variants      []string           `yaml:"variants"`
	Conversations []fileConversation `yaml:"conversations"`
}

type fileConversation struct {
	Messages []fileMessage `yaml:"messages"`
}

type fileMessage struct {
	Role    string    `yaml:"role"`
	Content yaml.Node `yaml:"content"`
}

// Load reads and parses a prompt-set YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt set: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt set %s: %w", path, err)
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

// Parse decodes a prompt-set document from raw YAML.
func Parse(data []byte) (*Set, error) {
	var fs fileSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	set := &Set{
		Name:     fs.Name,
		Variants: fs.Variants,
	}
	for i, conv := range fs.Conversations {
		segments := make([]thread.Segment, 0, len(conv.Messages))
		for j, msg := range conv.Messages {
			body, err := decodeContent(&msg.Content)
			if err != nil {
				return nil, fmt.Errorf("conversation %d message %d: %w", i, j, err)
			}
			segments = append(segments, thread.Segment{Role: msg.Role, Body: body})
		}
		set.Conversations = append(set.Conversations, segments)
	}
	return set, nil
}

// decodeContent maps a YAML scalar onto thread.Text and a sequence onto
// thread.Parts.
func decodeContent(node *yaml.Node) (thread.Body, error) {
	switch node.Kind {
	case 0: // absent
		return thread.Text(""), nil
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("invalid scalar content: %w", err)
		}
		return thread.Text(s), nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return nil, fmt.Errorf("invalid content list: %w", err)
		}
		return thread.Parts(parts), nil
	default:
		return nil, fmt.Errorf("content must be a string or a list of strings")
	}
}

// LoadTexts reads each path as one plain-text variant.
func LoadTexts(paths []string) ([]string, error) {
	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read variant %s: %w", p, err)
		}
		texts = append(texts, string(data))
	}
	return texts, nil
}

// IsYAML reports whether a path looks like a prompt-set document rather than
// a plain-text variant.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

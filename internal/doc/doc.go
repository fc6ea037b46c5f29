// Package doc loads the documents the viewer displays: plain UTF-8 text with
// an optional YAML front matter block describing the call-to-action.
package doc

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	frontMatterFence = "---"

	// DefaultActionLabel is used when the front matter names no action.
	DefaultActionLabel = "Continue"
)

// Action is the call-to-action attached to a document. Command is run in a
// shell when the action is activated; an empty command makes activation a
// pure acknowledgement.
type Action struct {
	ID      string `yaml:"id,omitempty"`
	Label   string `yaml:"label"`
	Command string `yaml:"command,omitempty"`
}

// frontMatter is the YAML block between the fences at the top of a document.
type frontMatter struct {
	Title  string `yaml:"title"`
	Action Action `yaml:"action"`
}

// Document is a loaded document with its front matter stripped.
type Document struct {
	Path   string
	Title  string
	Action Action
	Body   string
}

// Load reads and parses a document file. Malformed front matter is an error;
// a file without front matter is a plain document with the default action.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(path, string(data))
}

// Parse builds a Document from raw file content.
func Parse(path, content string) (*Document, error) {
	d := &Document{
		Path: path,
		Body: content,
	}

	if raw, body, ok := splitFrontMatter(content); ok {
		var fm frontMatter
		if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
			return nil, fmt.Errorf("failed to parse front matter in %s: %w", path, err)
		}
		d.Title = fm.Title
		d.Action = fm.Action
		d.Body = body
	}

	if d.Action.Label == "" {
		d.Action.Label = DefaultActionLabel
	}
	if d.Action.ID == "" {
		d.Action.ID = uuid.New().String()
	}
	return d, nil
}

// splitFrontMatter separates a leading fenced YAML block from the body.
// Returns ok=false when the content has no front matter.
func splitFrontMatter(content string) (raw, body string, ok bool) {
	if !strings.HasPrefix(content, frontMatterFence+"\n") {
		return "", "", false
	}
	rest := content[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return "", "", false
	}
	raw = rest[:end]
	body = rest[end+len(frontMatterFence)+1:]
	body = strings.TrimPrefix(body, "\n")
	return raw, body, true
}

// Lines word-wraps the body to the given width for display. Blank lines are
// preserved so paragraph structure survives the wrap.
func (d *Document) Lines(width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	for _, line := range strings.Split(strings.TrimRight(d.Body, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrap(line, width)...)
	}
	return out
}

// wrap greedily breaks one line into pieces no wider than width. Words
// longer than the width are hard-split.
func wrap(line string, width int) []string {
	words := strings.Fields(line)
	var out []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}

	for _, word := range words {
		for len(word) > width {
			flush()
			out = append(out, word[:width])
			word = word[width:]
		}
		if b.Len() == 0 {
			b.WriteString(word)
			continue
		}
		if b.Len()+1+len(word) > width {
			flush()
			b.WriteString(word)
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
	}
	flush()

	if len(out) == 0 {
		return []string{""}
	}
	return out
}

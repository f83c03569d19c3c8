package summa

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a corpus file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrMalformed reports a document that violates the structural invariants
// (empty or duplicate identifiers).
var ErrMalformed = errors.New("malformed document")

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// Parse decodes a single buffer holding an array of parts. The result is not
// validated; use Validate or Load for that.
func Parse(data []byte, format Format) ([]Part, error) {
	var parts []Part
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &parts); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &parts); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return parts, nil
}

// Load expands the given glob patterns (doublestar syntax, e.g. "data/**/*.json"),
// decodes every matching corpus file in sorted path order and returns the
// concatenated, validated document.
func Load(patterns []string) (*Document, error) {
	files, err := expand(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files match %s", strings.Join(patterns, ", "))
	}

	doc := &Document{}
	for _, path := range files {
		format, ok := FormatFromPath(path)
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		parts, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		doc.Parts = append(doc.Parts, parts...)
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// expand resolves the patterns to a sorted, de-duplicated list of files.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := FormatFromPath(m); !ok || seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Validate checks the sibling-uniqueness invariants of the document. Any
// violation is reported as ErrMalformed with the offending location.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrMalformed)
	}
	parts := make(map[string]bool, len(doc.Parts))
	for _, p := range doc.Parts {
		if p.ID == "" {
			return fmt.Errorf("%w: part with empty id (title %q)", ErrMalformed, p.Title)
		}
		if parts[p.ID] {
			return fmt.Errorf("%w: duplicate part id %q", ErrMalformed, p.ID)
		}
		parts[p.ID] = true

		treatises := make(map[int]bool, len(p.Treatises))
		for _, t := range p.Treatises {
			if treatises[t.ID] {
				return fmt.Errorf("%w: duplicate treatise %d in part %s", ErrMalformed, t.ID, p.ID)
			}
			treatises[t.ID] = true

			questions := make(map[int]bool, len(t.Questions))
			for _, q := range t.Questions {
				if questions[q.ID] {
					return fmt.Errorf("%w: duplicate question %d in Pt%s-Tr%d", ErrMalformed, q.ID, p.ID, t.ID)
				}
				questions[q.ID] = true

				articles := make(map[int]bool, len(q.Articles))
				for _, a := range q.Articles {
					if articles[a.ID] {
						return fmt.Errorf("%w: duplicate article %d in Pt%s-Tr%d-Qu%d", ErrMalformed, a.ID, p.ID, t.ID, q.ID)
					}
					articles[a.ID] = true
				}
			}
		}
	}
	return nil
}

package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// newMarkdown returns the renderer for corpus text. Raw HTML in the source is
// escaped, so output is safe to embed.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
	)
}

// renderLines renders each line as its own paragraph.
func (s *Site) renderLines(lines []string) template.HTML {
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(strings.Join(kept, "\n\n")), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(strings.Join(kept, " ")))
	}
	return template.HTML(buf.String())
}

// renderInline renders a single line without the enclosing paragraph, for
// snippets and titles.
func (s *Site) renderInline(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	// Newlines would start new blocks.
	text = strings.Join(strings.Fields(text), " ")
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "<p>") || !strings.HasSuffix(out, "</p>") {
		// Parsed as a list or heading.
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>"))
}

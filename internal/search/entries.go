// Package search indexes the Summa for keyword and semantic lookup and keeps
// a log of the queries it answered.
package search

import (
	"strings"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/summa"
)

// Entry is one searchable node of the document. ID is its path token.
type Entry struct {
	ID      string         `json:"id"`
	Kind    pathtoken.Kind `json:"kind"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
}

// Hit is a search result. Snippet marks matched terms with **double
// asterisks** so it renders as emphasis.
type Hit struct {
	ID      string         `json:"id"`
	Kind    pathtoken.Kind `json:"kind"`
	Title   string         `json:"title"`
	Snippet string         `json:"snippet"`
	Score   float64        `json:"score"`
}

// EntriesFrom flattens the document into one entry per part, treatise,
// question and article, in document order.
func EntriesFrom(doc *summa.Document) []Entry {
	if doc == nil {
		return nil
	}
	var entries []Entry
	for pi := range doc.Parts {
		p := &doc.Parts[pi]
		entries = append(entries, Entry{
			ID:    pathtoken.Build(p.ID),
			Kind:  pathtoken.KindPart,
			Title: p.Title,
		})
		for ti := range p.Treatises {
			t := &p.Treatises[ti]
			entries = append(entries, Entry{
				ID:    pathtoken.Build(p.ID, t.ID),
				Kind:  pathtoken.KindTreatise,
				Title: resolver.TreatiseTitle(p, t),
			})
			for qi := range t.Questions {
				q := &t.Questions[qi]
				entries = append(entries, Entry{
					ID:      pathtoken.Build(p.ID, t.ID, q.ID),
					Kind:    pathtoken.KindQuestion,
					Title:   q.Title,
					Content: joinText(q.Description),
				})
				for ai := range q.Articles {
					a := &q.Articles[ai]
					entries = append(entries, Entry{
						ID:      pathtoken.Build(p.ID, t.ID, q.ID, a.ID),
						Kind:    pathtoken.KindArticle,
						Title:   resolver.ArticleTitle(p, t, q, a),
						Content: articleText(a),
					})
				}
			}
		}
	}
	return entries
}

func articleText(a *summa.Article) string {
	var parts []string
	for _, o := range a.Objections {
		parts = append(parts, joinText(o.Text))
	}
	parts = append(parts, joinText(a.Counter), joinText(a.Body))
	for _, r := range a.Replies {
		parts = append(parts, joinText(r.Text))
	}
	return joinText(parts)
}

// joinText joins non-empty paragraphs with newlines.
func joinText(lines []string) string {
	var kept []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// excerpt returns at most n runes of s, cut at a word boundary.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

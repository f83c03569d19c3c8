package search

import (
	"testing"

	"github.com/summa-explorer/summa/internal/db"
	"github.com/summa-explorer/summa/internal/summa"
)

func fixtureDoc() *summa.Document {
	return &summa.Document{Parts: []summa.Part{
		{
			ID:    "FS",
			Title: "Prima Pars",
			Treatises: []summa.Treatise{{
				ID:    1,
				Title: "On God",
				Questions: []summa.Question{{
					ID:          2,
					Title:       "The Existence of God",
					Description: []string{"Concerning the existence of God, there are three points of inquiry."},
					Articles: []summa.Article{
						{
							ID:         1,
							Title:      []string{"Whether the existence of God", "is self-evident?"},
							Objections: []summa.Paragraph{{ID: 1, Text: []string{"It seems that the existence of God is self-evident."}}},
							Counter:    []string{"On the contrary, no one can think the opposite."},
							Body:       []string{"I answer that a thing can be self-evident in two ways."},
							Replies:    []summa.Paragraph{{ID: 1, Text: []string{"Reply to the first objection."}}},
						},
						{
							ID:    2,
							Title: []string{"Whether it can be demonstrated that God exists?"},
							Body:  []string{"Demonstration can be made in two ways."},
						},
						{
							ID:    3,
							Title: []string{"Whether God exists?"},
							Body:  []string{"The existence of God can be proved in five ways."},
						},
					},
				}},
			}},
		},
		{
			ID:    "SS",
			Title: "Secunda Secundae",
			Treatises: []summa.Treatise{{
				ID:    1,
				Title: "On Faith",
				Questions: []summa.Question{{
					ID:    1,
					Title: "Of Faith",
					Articles: []summa.Article{{
						ID:    1,
						Title: []string{"Whether the object of faith is the First Truth?"},
						Body:  []string{"Grace perfects nature."},
					}},
				}},
			}},
		},
	}}
}

// fixtureEntryCount is the number of nodes in fixtureDoc.
const fixtureEntryCount = 10

func setupDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

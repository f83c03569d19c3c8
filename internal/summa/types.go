// Package summa holds the read-only document model of the Summa Theologica:
// parts, treatises, questions and articles, plus loading and validation.
package summa

// Document is the whole corpus, an ordered list of parts. It is loaded once
// and never mutated afterwards.
type Document struct {
	Parts []Part
}

// Part is a top-level division identified by an alphanumeric code such as "FS".
type Part struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Treatises []Treatise `json:"treatises" yaml:"treatises"`
}

// Treatise is a subdivision of a part.
type Treatise struct {
	ID        int        `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a subdivision of a treatise.
type Question struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description []string  `json:"description" yaml:"description"`
	Articles    []Article `json:"articles" yaml:"articles"`
}

// Article is the leaf unit of content. Its position in Question.Articles
// defines its previous and next neighbours.
type Article struct {
	ID         int         `json:"id" yaml:"id"`
	Title      []string    `json:"title" yaml:"title"`
	Objections []Paragraph `json:"objections" yaml:"objections"`
	Counter    []string    `json:"counter" yaml:"counter"`
	Replies    []Paragraph `json:"replies" yaml:"replies"`
	Body       []string    `json:"body" yaml:"body"`
}

// Paragraph is a numbered block of text, used for objections and replies.
type Paragraph struct {
	ID   int      `json:"id" yaml:"id"`
	Text []string `json:"text" yaml:"text"`
}

// Stats counts the entities of each level in a document.
type Stats struct {
	Parts     int `json:"parts"`
	Treatises int `json:"treatises"`
	Questions int `json:"questions"`
	Articles  int `json:"articles"`
}

// Stats walks the document and counts entities per level.
func (d *Document) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	s.Parts = len(d.Parts)
	for _, p := range d.Parts {
		s.Treatises += len(p.Treatises)
		for _, t := range p.Treatises {
			s.Questions += len(t.Questions)
			for _, q := range t.Questions {
				s.Articles += len(q.Articles)
			}
		}
	}
	return s
}

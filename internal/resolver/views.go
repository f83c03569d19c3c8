package resolver

import (
	"strconv"
	"strings"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/summa"
)

// View is the result of resolving a selection. The concrete type is one of
// *TreatiseList, *QuestionList, *ArticleList or *ArticleDetail.
type View interface {
	// Kind is the level of the selection the view was resolved from.
	Kind() pathtoken.Kind
	// Token is the path token addressing the view.
	Token() string
}

// PartRef identifies a part together with its display title.
type PartRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Ref identifies a numbered node together with its display title.
type Ref struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// PartList is the top-level listing of the document.
type PartList struct {
	Parts []PartRef `json:"parts"`
}

type TreatiseList struct {
	Part      PartRef `json:"part"`
	Treatises []Ref   `json:"treatises"`
}

type QuestionList struct {
	Part      PartRef `json:"part"`
	Treatise  Ref     `json:"treatise"`
	Questions []Ref   `json:"questions"`
}

type ArticleList struct {
	Part        PartRef  `json:"part"`
	Treatise    Ref      `json:"treatise"`
	Question    Ref      `json:"question"`
	Description []string `json:"description"`
	Articles    []Ref    `json:"articles"`
}

// ArticleDetail is the full content of one article. Previous and Next are nil
// at the ends of the question's article sequence.
type ArticleDetail struct {
	Part       PartRef           `json:"part"`
	Treatise   Ref               `json:"treatise"`
	Question   Ref               `json:"question"`
	Article    Ref               `json:"article"`
	Objections []summa.Paragraph `json:"objections"`
	Counter    []string          `json:"counter"`
	Replies    []summa.Paragraph `json:"replies"`
	Body       []string          `json:"body"`
	Previous   *Ref              `json:"previous"`
	Next       *Ref              `json:"next"`
}

func (*TreatiseList) Kind() pathtoken.Kind  { return pathtoken.KindPart }
func (*QuestionList) Kind() pathtoken.Kind  { return pathtoken.KindTreatise }
func (*ArticleList) Kind() pathtoken.Kind   { return pathtoken.KindQuestion }
func (*ArticleDetail) Kind() pathtoken.Kind { return pathtoken.KindArticle }

func (v *TreatiseList) Token() string { return pathtoken.Build(v.Part.ID) }

func (v *QuestionList) Token() string { return pathtoken.Build(v.Part.ID, v.Treatise.ID) }

func (v *ArticleList) Token() string {
	return pathtoken.Build(v.Part.ID, v.Treatise.ID, v.Question.ID)
}

func (v *ArticleDetail) Token() string {
	return pathtoken.Build(v.Part.ID, v.Treatise.ID, v.Question.ID, v.Article.ID)
}

// ReplyLabel returns the heading of a reply: "Reply to Objection n" when an
// objection with the reply's id exists, otherwise "Reply n".
func (v *ArticleDetail) ReplyLabel(reply summa.Paragraph) string {
	for _, o := range v.Objections {
		if o.ID == reply.ID {
			return "Reply to Objection " + strconv.Itoa(reply.ID)
		}
	}
	return "Reply " + strconv.Itoa(reply.ID)
}

// DisplayTitle joins lines with single spaces. When the result is empty it
// returns the first non-empty fallback, in the order given.
func DisplayTitle(lines []string, fallbacks ...string) string {
	if joined := strings.Join(lines, " "); joined != "" {
		return joined
	}
	for _, f := range fallbacks {
		if f != "" {
			return f
		}
	}
	return ""
}

// TreatiseTitle is the treatise title, or the part title when it has none.
func TreatiseTitle(p *summa.Part, t *summa.Treatise) string {
	return DisplayTitle(nil, t.Title, p.Title)
}

// ArticleTitle is the joined article title, falling back to the question
// title and then to the treatise title.
func ArticleTitle(p *summa.Part, t *summa.Treatise, q *summa.Question, a *summa.Article) string {
	return DisplayTitle(a.Title, q.Title, TreatiseTitle(p, t))
}

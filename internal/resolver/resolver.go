// Package resolver turns parsed path tokens into denormalized views of the
// Summa document: ancestor titles plus the children of the requested level,
// or the full article with its previous and next siblings.
//
// A Resolver only reads the document it was built with, so one value can be
// shared by any number of goroutines.
package resolver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/summa"
)

var (
	// ErrNotFound is matched by every lookup miss. The concrete error is a
	// *NotFoundError naming the missing level.
	ErrNotFound = errors.New("not found")

	// ErrDataFault reports a document that cannot be traversed. It is the same
	// sentinel summa.Validate returns, so a load-time failure and a runtime one
	// are matched alike.
	ErrDataFault = summa.ErrMalformed
)

// NotFoundError names the first level of a selection that does not exist.
type NotFoundError struct {
	Level pathtoken.Kind
	ID    string
	// Parent is the token of the deepest level that was found, empty for parts.
	Parent string
}

func (e *NotFoundError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("%s %s not found", e.Level, e.ID)
	}
	return fmt.Sprintf("%s %s not found in %s", e.Level, e.ID, e.Parent)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Resolver answers lookups against one immutable document.
type Resolver struct {
	doc *summa.Document
}

// New returns a resolver over doc. A nil doc is accepted; every lookup then
// fails with ErrDataFault.
func New(doc *summa.Document) *Resolver {
	return &Resolver{doc: doc}
}

// Document returns the document the resolver reads.
func (r *Resolver) Document() *summa.Document {
	return r.doc
}

// chain holds the located ancestors of a selection, filled up to the
// requested depth.
type chain struct {
	part     *summa.Part
	treatise *summa.Treatise
	question *summa.Question
	article  *summa.Article
	// index is the position of article within question.Articles.
	index int
}

// locate walks the document for the first len(ids) levels. It stops at the
// first missing level and reports it as a *NotFoundError.
func (r *Resolver) locate(ids []pathtoken.ID) (chain, error) {
	var c chain
	if r == nil || r.doc == nil {
		return c, fmt.Errorf("%w: no document loaded", ErrDataFault)
	}
	if len(ids) == 0 || len(ids) > pathtoken.MaxDepth {
		return c, fmt.Errorf("%w: selection of %d levels", pathtoken.ErrInvalid, len(ids))
	}
	for i, id := range ids {
		if id.Kind != pathtoken.Kind(i) {
			return c, fmt.Errorf("%w: %s at position %d", pathtoken.ErrInvalid, id.Kind, i)
		}
	}

	for i := range r.doc.Parts {
		if r.doc.Parts[i].ID == ids[0].Code {
			c.part = &r.doc.Parts[i]
			break
		}
	}
	if c.part == nil {
		return c, &NotFoundError{Level: pathtoken.KindPart, ID: ids[0].Code}
	}
	if len(ids) == 1 {
		return c, nil
	}

	for i := range c.part.Treatises {
		if c.part.Treatises[i].ID == ids[1].Num {
			c.treatise = &c.part.Treatises[i]
			break
		}
	}
	if c.treatise == nil {
		return c, missing(ids, 1)
	}
	if len(ids) == 2 {
		return c, nil
	}

	for i := range c.treatise.Questions {
		if c.treatise.Questions[i].ID == ids[2].Num {
			c.question = &c.treatise.Questions[i]
			break
		}
	}
	if c.question == nil {
		return c, missing(ids, 2)
	}
	if len(ids) == 3 {
		return c, nil
	}

	for i := range c.question.Articles {
		if c.question.Articles[i].ID == ids[3].Num {
			c.article = &c.question.Articles[i]
			c.index = i
			break
		}
	}
	if c.article == nil {
		return c, missing(ids, 3)
	}
	return c, nil
}

func missing(ids []pathtoken.ID, depth int) *NotFoundError {
	return &NotFoundError{
		Level:  ids[depth].Kind,
		ID:     strconv.Itoa(ids[depth].Num),
		Parent: pathtoken.Format(ids[:depth]),
	}
}

// ListParts returns every part in document order.
func (r *Resolver) ListParts() (*PartList, error) {
	if r == nil || r.doc == nil {
		return nil, fmt.Errorf("%w: no document loaded", ErrDataFault)
	}
	list := &PartList{Parts: make([]PartRef, 0, len(r.doc.Parts))}
	for _, p := range r.doc.Parts {
		list.Parts = append(list.Parts, PartRef{ID: p.ID, Title: p.Title})
	}
	return list, nil
}

// ListTreatises returns a part and its treatises. A treatise without a title
// is shown with the part's title.
func (r *Resolver) ListTreatises(partID string) (*TreatiseList, error) {
	c, err := r.locate([]pathtoken.ID{pathtoken.Part(partID)})
	if err != nil {
		return nil, err
	}
	list := &TreatiseList{
		Part:      partRef(c.part),
		Treatises: make([]Ref, 0, len(c.part.Treatises)),
	}
	for i := range c.part.Treatises {
		list.Treatises = append(list.Treatises, treatiseRef(c.part, &c.part.Treatises[i]))
	}
	return list, nil
}

// ListQuestions returns a treatise, its ancestors and its questions.
func (r *Resolver) ListQuestions(partID string, treatiseID int) (*QuestionList, error) {
	c, err := r.locate([]pathtoken.ID{pathtoken.Part(partID), pathtoken.Treatise(treatiseID)})
	if err != nil {
		return nil, err
	}
	list := &QuestionList{
		Part:      partRef(c.part),
		Treatise:  treatiseRef(c.part, c.treatise),
		Questions: make([]Ref, 0, len(c.treatise.Questions)),
	}
	for _, q := range c.treatise.Questions {
		list.Questions = append(list.Questions, Ref{ID: q.ID, Title: q.Title})
	}
	return list, nil
}

// ListArticles returns a question, its description and its articles in
// stored order.
func (r *Resolver) ListArticles(partID string, treatiseID, questionID int) (*ArticleList, error) {
	c, err := r.locate([]pathtoken.ID{
		pathtoken.Part(partID), pathtoken.Treatise(treatiseID), pathtoken.Question(questionID),
	})
	if err != nil {
		return nil, err
	}
	list := &ArticleList{
		Part:        partRef(c.part),
		Treatise:    treatiseRef(c.part, c.treatise),
		Question:    Ref{ID: c.question.ID, Title: c.question.Title},
		Description: c.question.Description,
		Articles:    make([]Ref, 0, len(c.question.Articles)),
	}
	for i := range c.question.Articles {
		list.Articles = append(list.Articles, c.articleRef(i))
	}
	return list, nil
}

// GetArticleDetail returns the full article together with its neighbours in
// the question's article sequence. Previous is nil for the first article and
// Next is nil for the last.
func (r *Resolver) GetArticleDetail(partID string, treatiseID, questionID, articleID int) (*ArticleDetail, error) {
	c, err := r.locate([]pathtoken.ID{
		pathtoken.Part(partID), pathtoken.Treatise(treatiseID),
		pathtoken.Question(questionID), pathtoken.Article(articleID),
	})
	if err != nil {
		return nil, err
	}
	a := c.article
	detail := &ArticleDetail{
		Part:       partRef(c.part),
		Treatise:   treatiseRef(c.part, c.treatise),
		Question:   Ref{ID: c.question.ID, Title: c.question.Title},
		Article:    c.articleRef(c.index),
		Objections: a.Objections,
		Counter:    a.Counter,
		Replies:    a.Replies,
		Body:       a.Body,
	}
	if c.index > 0 {
		prev := c.articleRef(c.index - 1)
		detail.Previous = &prev
	}
	if c.index < len(c.question.Articles)-1 {
		next := c.articleRef(c.index + 1)
		detail.Next = &next
	}
	return detail, nil
}

// Resolve dispatches on the number of identifiers: one lists treatises, two
// lists questions, three lists articles and four returns the article detail.
// An empty selection is reported as not found.
func (r *Resolver) Resolve(ids []pathtoken.ID) (View, error) {
	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("%w: empty selection", ErrNotFound)
	case 1, 2, 3, 4:
	default:
		return nil, fmt.Errorf("%w: selection of %d levels", pathtoken.ErrInvalid, len(ids))
	}
	for i, id := range ids {
		if id.Kind != pathtoken.Kind(i) {
			return nil, fmt.Errorf("%w: %s at position %d", pathtoken.ErrInvalid, id.Kind, i)
		}
	}

	switch len(ids) {
	case 1:
		v, err := r.ListTreatises(ids[0].Code)
		if err != nil {
			return nil, err
		}
		return v, nil
	case 2:
		v, err := r.ListQuestions(ids[0].Code, ids[1].Num)
		if err != nil {
			return nil, err
		}
		return v, nil
	case 3:
		v, err := r.ListArticles(ids[0].Code, ids[1].Num, ids[2].Num)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := r.GetArticleDetail(ids[0].Code, ids[1].Num, ids[2].Num, ids[3].Num)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ResolveToken parses token and resolves it.
func (r *Resolver) ResolveToken(token string) (View, error) {
	ids, err := pathtoken.Parse(token)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ids)
}

func partRef(p *summa.Part) PartRef {
	return PartRef{ID: p.ID, Title: p.Title}
}

func treatiseRef(p *summa.Part, t *summa.Treatise) Ref {
	return Ref{ID: t.ID, Title: TreatiseTitle(p, t)}
}

func (c chain) articleRef(i int) Ref {
	a := &c.question.Articles[i]
	return Ref{ID: a.ID, Title: ArticleTitle(c.part, c.treatise, c.question, a)}
}

package site

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/summa"
)

// Crumb is one breadcrumb link. The last crumb of a trail is the current page.
type Crumb struct {
	Title string
	Href  string
}

// listItem is one row of a list page.
type listItem struct {
	Title string
	Href  string
}

// listPage models the part, treatise, question and article lists.
type listPage struct {
	Heading     string
	Subheading  string
	Description []string
	Items       []listItem
}

// articlePage models the article detail.
type articlePage struct {
	Detail   *resolver.ArticleDetail
	PrevLink *listItem
	NextLink *listItem
}

// homePage models the landing page.
type homePage struct {
	Stats summa.Stats
}

func exploreHref(token string) string {
	if token == "" {
		return "/explore"
	}
	return "/explore/" + token
}

// Breadcrumbs returns the trail from the part list down to the view.
func Breadcrumbs(v resolver.View) []Crumb {
	crumbs := []Crumb{{Title: "Explore", Href: exploreHref("")}}
	var part resolver.PartRef
	var nums []resolver.Ref
	switch v := v.(type) {
	case *resolver.TreatiseList:
		part = v.Part
	case *resolver.QuestionList:
		part, nums = v.Part, []resolver.Ref{v.Treatise}
	case *resolver.ArticleList:
		part, nums = v.Part, []resolver.Ref{v.Treatise, v.Question}
	case *resolver.ArticleDetail:
		part, nums = v.Part, []resolver.Ref{v.Treatise, v.Question, v.Article}
	default:
		return crumbs
	}

	crumbs = append(crumbs, Crumb{Title: part.Title, Href: exploreHref(pathtoken.Build(part.ID))})
	ids := make([]int, 0, len(nums))
	for _, ref := range nums {
		ids = append(ids, ref.ID)
		crumbs = append(crumbs, Crumb{
			Title: ref.Title,
			Href:  exploreHref(pathtoken.Build(part.ID, ids...)),
		})
	}
	return crumbs
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	data := s.page("")
	data.Content = homePage{Stats: s.resolver.Document().Stats()}
	s.render(w, http.StatusOK, "home", data)
}

func (s *Site) handleExplore(w http.ResponseWriter, r *http.Request) {
	parts, err := s.resolver.ListParts()
	if err != nil {
		log.Printf("site: listing parts: %v", err)
		data := s.page("Something went wrong")
		data.Content = "There was a problem with your request."
		s.render(w, http.StatusInternalServerError, "error", data)
		return
	}

	page := listPage{Heading: "The Summa Theologica", Subheading: "Parts list"}
	for _, p := range parts.Parts {
		page.Items = append(page.Items, listItem{Title: p.Title, Href: exploreHref(pathtoken.Build(p.ID))})
	}
	data := s.page("Explore")
	data.Content = page
	s.render(w, http.StatusOK, "list", data)
}

func (s *Site) handleExploreToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	view, err := s.resolver.ResolveToken(token)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("site: resolving %q: %v", token, err)
		}
		s.handleNotFound(w, r)
		return
	}

	data := s.page("")
	data.Crumbs = Breadcrumbs(view)
	data.Title = data.Crumbs[len(data.Crumbs)-1].Title

	switch v := view.(type) {
	case *resolver.TreatiseList:
		page := listPage{Heading: v.Part.Title, Subheading: "Treatises list"}
		for _, t := range v.Treatises {
			page.Items = append(page.Items, listItem{Title: t.Title, Href: exploreHref(pathtoken.Build(v.Part.ID, t.ID))})
		}
		data.Content = page
		s.render(w, http.StatusOK, "list", data)
	case *resolver.QuestionList:
		page := listPage{Heading: v.Treatise.Title, Subheading: "Questions list"}
		for _, q := range v.Questions {
			page.Items = append(page.Items, listItem{Title: q.Title, Href: exploreHref(pathtoken.Build(v.Part.ID, v.Treatise.ID, q.ID))})
		}
		data.Content = page
		s.render(w, http.StatusOK, "list", data)
	case *resolver.ArticleList:
		page := listPage{Heading: v.Question.Title, Subheading: "Articles list", Description: v.Description}
		for _, a := range v.Articles {
			page.Items = append(page.Items, listItem{Title: a.Title, Href: exploreHref(pathtoken.Build(v.Part.ID, v.Treatise.ID, v.Question.ID, a.ID))})
		}
		data.Content = page
		s.render(w, http.StatusOK, "list", data)
	case *resolver.ArticleDetail:
		page := articlePage{Detail: v}
		if v.Previous != nil {
			page.PrevLink = &listItem{Title: v.Previous.Title, Href: exploreHref(pathtoken.Build(v.Part.ID, v.Treatise.ID, v.Question.ID, v.Previous.ID))}
		}
		if v.Next != nil {
			page.NextLink = &listItem{Title: v.Next.Title, Href: exploreHref(pathtoken.Build(v.Part.ID, v.Treatise.ID, v.Question.ID, v.Next.ID))}
		}
		data.Content = page
		s.render(w, http.StatusOK, "article", data)
	default:
		s.handleNotFound(w, r)
	}
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	data := s.page("Page not found")
	data.Content = r.URL.Path
	s.render(w, http.StatusNotFound, "notfound", data)
}

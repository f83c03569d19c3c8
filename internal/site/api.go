package site

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/search"
)

// exploreResponse is the JSON response for /api/explore/{token}.
type exploreResponse struct {
	Token string         `json:"token"`
	Kind  pathtoken.Kind `json:"kind"`
	View  resolver.View  `json:"view"`
}

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query string      `json:"query"`
	Mode  search.Mode `json:"mode"`
	Hits  []hitView   `json:"hits"`
}

func (s *Site) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.resolver.Document().Stats())
}

func (s *Site) handleAPIParts(w http.ResponseWriter, r *http.Request) {
	parts, err := s.resolver.ListParts()
	if err != nil {
		log.Printf("site: listing parts: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

func (s *Site) handleAPIExplore(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	view, err := s.resolver.ResolveToken(token)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("site: resolving %q: %v", token, err)
		}
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, exploreResponse{Token: view.Token(), Kind: view.Kind(), View: view})
}

func (s *Site) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "search is not available"})
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = s.opts.ResultLimit
	}
	res, err := s.search.Search(r.Context(), search.Request{
		Query: q.Get("q"),
		Limit: limit,
		Mode:  search.Mode(q.Get("mode")),
	})
	if err != nil {
		log.Printf("site: search %q: %v", q.Get("q"), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: res.Query, Mode: res.Mode, Hits: s.hitViews(res.Hits)})
}

func (s *Site) handleAPIRecent(w http.ResponseWriter, r *http.Request) {
	records := []search.QueryRecord{}
	if s.search == nil || s.search.Log() == nil {
		writeJSON(w, http.StatusOK, records)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recent, err := s.search.Log().Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if recent != nil {
		records = recent
	}
	writeJSON(w, http.StatusOK, records)
}

// statusFor maps resolver errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pathtoken.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, resolver.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

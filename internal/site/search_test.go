package site

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/search"
)

func TestHitLabel(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"PtFS", "click to see the part"},
		{"PtFS-Tr1", "click to see the treatise"},
		{"PtFS-Tr1-Qu2", "click to see the question"},
		{"PtFS-Tr1-Qu2-Ar3", "click to see the article"},
		{"garbage", "click to see the result"},
	}
	for _, tt := range tests {
		if got := HitLabel(tt.token); got != tt.want {
			t.Errorf("HitLabel(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestSearchPage(t *testing.T) {
	doc := fixtureDoc()
	r := setupRouter(t, doc, newTestService(t, doc))

	w := get(t, r, "/search?q=demonstrated")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	assertContains(t, body,
		"<!DOCTYPE html>",
		`value="demonstrated"`,
		`href="/explore/PtFS-Tr1-Qu2-Ar2"`,
		"click to see the article",
		"<strong>",
	)
}

func TestSearchPageEmptyQuery(t *testing.T) {
	doc := fixtureDoc()
	r := setupRouter(t, doc, newTestService(t, doc))

	w := get(t, r, "/search")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "results-summary") {
		t.Error("empty query should not render a results summary")
	}
}

func TestSearchHTMXFragment(t *testing.T) {
	doc := fixtureDoc()
	r := setupRouter(t, doc, newTestService(t, doc))

	w := get(t, r, "/search?q=faith", "HX-Request", "true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX request should receive only the fragment")
	}
	assertContains(t, body, `id="search-results"`, `href="/explore/PtSS`)
}

func TestSearchUnavailable(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)

	w := get(t, r, "/search?q=god")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w.Body.String(), "Search is not available.")

	api := get(t, r, "/api/search?q=god")
	if api.Code != http.StatusServiceUnavailable {
		t.Errorf("api: expected 503, got %d", api.Code)
	}
}

func TestAPIParts(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)

	w := get(t, r, "/api/parts")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var parts resolver.PartList
	if err := json.NewDecoder(w.Body).Decode(&parts); err != nil {
		t.Fatalf("decoding parts: %v", err)
	}
	if len(parts.Parts) != 2 || parts.Parts[0].ID != "FS" || parts.Parts[1].Title != "Secunda Secundae" {
		t.Errorf("parts = %+v", parts.Parts)
	}
}

func TestAPIPartsDataFault(t *testing.T) {
	r := setupRouter(t, nil, nil)
	w := get(t, r, "/api/parts")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestAPIExplore(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)

	w := get(t, r, "/api/explore/PtFS-Tr1-Qu2-Ar1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string                 `json:"token"`
		Kind  string                 `json:"kind"`
		View  resolver.ArticleDetail `json:"view"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Token != "PtFS-Tr1-Qu2-Ar1" || resp.Kind != "article" {
		t.Errorf("token, kind = %q, %q", resp.Token, resp.Kind)
	}
	if resp.View.Previous != nil {
		t.Errorf("previous = %+v, want nil", resp.View.Previous)
	}
	if resp.View.Next == nil || resp.View.Next.ID != 2 {
		t.Errorf("next = %+v, want article 2", resp.View.Next)
	}
	if len(resp.View.Objections) != 2 {
		t.Errorf("objections = %d, want 2", len(resp.View.Objections))
	}
}

func TestAPIExploreErrors(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)

	tests := []struct {
		token string
		want  int
	}{
		{"Tr1", http.StatusBadRequest},
		{"PtFS-Tr1-Qu2-Ar1-Ar2", http.StatusBadRequest},
		{"PtXX", http.StatusNotFound},
		{"PtFS-Tr1-Qu7", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := get(t, r, "/api/explore/"+tt.token)
		if w.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.token, tt.want, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil || body["error"] == "" {
			t.Errorf("%s: expected an error body, got %v (%v)", tt.token, body, err)
		}
	}
}

func TestAPISearchAndRecent(t *testing.T) {
	doc := fixtureDoc()
	r := setupRouter(t, doc, newTestService(t, doc))

	w := get(t, r, "/api/search?q=existence&limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Query != "existence" || resp.Mode != search.ModeKeyword {
		t.Errorf("query, mode = %q, %q", resp.Query, resp.Mode)
	}
	if len(resp.Hits) == 0 || len(resp.Hits) > 5 {
		t.Fatalf("got %d hits, want 1..5", len(resp.Hits))
	}
	for _, h := range resp.Hits {
		if h.Href != "/explore/"+h.ID {
			t.Errorf("hit %s href = %q", h.ID, h.Href)
		}
		if !strings.HasPrefix(h.Label, "click to see the ") {
			t.Errorf("hit %s label = %q", h.ID, h.Label)
		}
	}

	w = get(t, r, "/api/search/recent?limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("recent: expected 200, got %d", w.Code)
	}
	var records []search.QueryRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("decoding recent: %v", err)
	}
	if len(records) != 1 || records[0].Query != "existence" || records[0].Hits != len(resp.Hits) {
		t.Errorf("recent = %+v", records)
	}
}

func TestAPIRecentWithoutSearch(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)
	w := get(t, r, "/api/search/recent")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestAPIStats(t *testing.T) {
	r := setupRouter(t, fixtureDoc(), nil)
	w := get(t, r, "/api/stats")
	var stats struct {
		Parts    int `json:"parts"`
		Articles int `json:"articles"`
	}
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if stats.Parts != 2 || stats.Articles != 4 {
		t.Errorf("stats = %+v", stats)
	}
}

package summa

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleJSON = `[
  {
    "id": "FS",
    "title": "First Part",
    "treatises": [
      {
        "id": 1,
        "title": "On God",
        "questions": [
          {
            "id": 2,
            "title": "Existence of God",
            "description": ["Whether God exists."],
            "articles": [
              {"id": 1, "title": ["Whether", "it is self-evident"], "objections": [{"id": 1, "text": ["It seems so."]}], "counter": ["On the contrary."], "replies": [{"id": 1, "text": ["Reply."]}], "body": ["I answer that."]},
              {"id": 2, "title": ["Whether it can be demonstrated"], "objections": [], "counter": [], "replies": [], "body": []}
            ]
          }
        ]
      }
    ]
  }
]`

const sampleYAML = `
- id: SS
  title: Second Part
  treatises:
    - id: 1
      title: On Faith
      questions:
        - id: 1
          title: Of the object of faith
          description: ["We must now consider faith."]
          articles:
            - id: 1
              title: ["Whether the object of faith is the First Truth?"]
              body: ["I answer that."]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseJSON(t *testing.T) {
	parts, err := Parse([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(parts))
	}
	q := parts[0].Treatises[0].Questions[0]
	if q.ID != 2 || q.Title != "Existence of God" {
		t.Errorf("question = %d %q, want 2 %q", q.ID, q.Title, "Existence of God")
	}
	if len(q.Articles) != 2 {
		t.Fatalf("articles = %d, want 2", len(q.Articles))
	}
	a := q.Articles[0]
	if len(a.Title) != 2 || a.Title[1] != "it is self-evident" {
		t.Errorf("article title = %v", a.Title)
	}
	if len(a.Objections) != 1 || a.Objections[0].Text[0] != "It seems so." {
		t.Errorf("objections = %+v", a.Objections)
	}
}

func TestParseYAML(t *testing.T) {
	parts, err := Parse([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parts) != 1 || parts[0].ID != "SS" {
		t.Fatalf("parts = %+v, want single SS part", parts)
	}
	a := parts[0].Treatises[0].Questions[0].Articles[0]
	if a.Body[0] != "I answer that." {
		t.Errorf("body = %v", a.Body)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := Parse([]byte("x"), Format("toml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"id":`), FormatJSON); err == nil {
		t.Error("expected error for truncated json")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"data/summa.json", FormatJSON, true},
		{"data/SUMMA.JSON", FormatJSON, true},
		{"data/part.yaml", FormatYAML, true},
		{"data/part.yml", FormatYAML, true},
		{"data/readme.md", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/first.json", sampleJSON)
	writeFile(t, dir, "b/nested/second.yaml", sampleYAML)
	writeFile(t, dir, "notes.md", "# not corpus")

	doc, err := Load([]string{filepath.Join(dir, "**", "*")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(doc.Parts))
	}
	// Sorted path order: a/first.json before b/nested/second.yaml.
	if doc.Parts[0].ID != "FS" || doc.Parts[1].ID != "SS" {
		t.Errorf("part order = %s,%s; want FS,SS", doc.Parts[0].ID, doc.Parts[1].ID)
	}
}

func TestLoadDeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "summa.json", sampleJSON)

	doc, err := Load([]string{path, filepath.Join(dir, "*.json")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Parts) != 1 {
		t.Errorf("parts = %d, want 1 (file matched twice must load once)", len(doc.Parts))
	}
}

func TestLoadNoMatches(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load([]string{filepath.Join(dir, "*.json")}); err == nil {
		t.Error("expected error when no files match")
	}
}

func TestLoadDuplicatePartsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.json", sampleJSON)
	writeFile(t, dir, "two.json", sampleJSON)

	_, err := Load([]string{filepath.Join(dir, "*.json")})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr bool
	}{
		{"nil", nil, true},
		{"empty", &Document{}, false},
		{"empty part id", &Document{Parts: []Part{{Title: "x"}}}, true},
		{"duplicate treatise", &Document{Parts: []Part{{ID: "FS", Treatises: []Treatise{{ID: 1}, {ID: 1}}}}}, true},
		{"duplicate question", &Document{Parts: []Part{{ID: "FS", Treatises: []Treatise{{ID: 1, Questions: []Question{{ID: 3}, {ID: 3}}}}}}}, true},
		{"duplicate article", &Document{Parts: []Part{{ID: "FS", Treatises: []Treatise{{ID: 1, Questions: []Question{{ID: 1, Articles: []Article{{ID: 1}, {ID: 1}}}}}}}}}, true},
		{"same ids under different parents", &Document{Parts: []Part{
			{ID: "FS", Treatises: []Treatise{{ID: 1, Questions: []Question{{ID: 1}}}}},
			{ID: "SS", Treatises: []Treatise{{ID: 1, Questions: []Question{{ID: 1}}}}},
		}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("err = %v, want ErrMalformed", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestStats(t *testing.T) {
	parts, err := Parse([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc := &Document{Parts: parts}
	got := doc.Stats()
	want := Stats{Parts: 1, Treatises: 1, Questions: 1, Articles: 2}
	if got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}

	var nilDoc *Document
	if s := nilDoc.Stats(); s != (Stats{}) {
		t.Errorf("nil Stats = %+v, want zero", s)
	}
}

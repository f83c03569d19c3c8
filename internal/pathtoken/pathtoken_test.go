package pathtoken

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  []ID
	}{
		{"", []ID{}},
		{"PtFS", []ID{Part("FS")}},
		{"PtFS-Tr1", []ID{Part("FS"), Treatise(1)}},
		{"PtFS-Tr1-Qu2", []ID{Part("FS"), Treatise(1), Question(2)}},
		{"PtFS-Tr1-Qu2-Ar2", []ID{Part("FS"), Treatise(1), Question(2), Article(2)}},
		{"PtSS-Tr12-Qu105-Ar10", []ID{Part("SS"), Treatise(12), Question(105), Article(10)}},
		{"Pt1a2b", []ID{Part("1a2b")}},
		{"Pt0", []ID{Part("0")}},
		{"PtFS-Tr01", []ID{Part("FS"), Treatise(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.token, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTypedValues(t *testing.T) {
	ids, err := Parse("PtFS-Tr1-Qu2-Ar2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := make([]any, len(ids))
	for i, id := range ids {
		got[i] = id.Value()
	}
	want := []any{"FS", 1, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("values = %#v, want %#v", got, want)
	}
	wantKinds := []Kind{KindPart, KindTreatise, KindQuestion, KindArticle}
	for i, id := range ids {
		if id.Kind != wantKinds[i] {
			t.Errorf("ids[%d].Kind = %v, want %v", i, id.Kind, wantKinds[i])
		}
	}
}

func TestParseEmptyIsNotNil(t *testing.T) {
	ids, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("Parse(\"\") = %#v, want empty non-nil slice", ids)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"Tr1-Pt5",
		"Tr1",
		"Qu2",
		"PtFS-Qu2",
		"PtFS-Tr1-Ar3",
		"PtFS-Tr1-Qu2-Ar3-Ar4",
		"PtFS-Tr1-Qu2-Ar3-Xx1",
		"Xx1",
		"ptFS",
		"PTFS",
		"PtFS-tr1",
		"PtFS-Tr",
		"PtFS-Tra",
		"PtFS-Tr1x",
		"PtFS-Tr-1",
		"PtFS-Tr+1",
		"Pt",
		"Pt F",
		" PtFS",
		"PtFS ",
		"PtF_S",
		"PtFS-",
		"-PtFS",
		"PtFS--Tr1",
		"PtFS-Tr99999999999999999999999",
	}
	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			ids, err := Parse(token)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalid", token, err)
			}
			if ids != nil {
				t.Errorf("Parse(%q) returned partial result %v", token, ids)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tokens := []string{"PtFS", "PtFS-Tr1", "PtFS-Tr1-Qu2", "PtTP-Tr3-Qu40-Ar8"}
	for _, token := range tokens {
		ids, err := Parse(token)
		if err != nil {
			t.Fatalf("Parse(%q): %v", token, err)
		}
		if got := Format(ids); got != token {
			t.Errorf("Format(Parse(%q)) = %q", token, got)
		}
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		part string
		nums []int
		want string
	}{
		{"FS", nil, "PtFS"},
		{"FS", []int{1}, "PtFS-Tr1"},
		{"FS", []int{1, 2}, "PtFS-Tr1-Qu2"},
		{"FS", []int{1, 2, 3}, "PtFS-Tr1-Qu2-Ar3"},
		{"FS", []int{1, 2, 3, 4}, "PtFS-Tr1-Qu2-Ar3"},
	}
	for _, tt := range tests {
		if got := Build(tt.part, tt.nums...); got != tt.want {
			t.Errorf("Build(%q, %v) = %q, want %q", tt.part, tt.nums, got, tt.want)
		}
	}
}

func TestIDString(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{Part("FS"), "PtFS"},
		{Treatise(3), "Tr3"},
		{Question(12), "Qu12"},
		{Article(1), "Ar1"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindQuestion.String() != "question" {
		t.Errorf("KindQuestion.String() = %q", KindQuestion.String())
	}
	if KindArticle.Prefix() != "Ar" {
		t.Errorf("KindArticle.Prefix() = %q", KindArticle.Prefix())
	}
	if Kind(9).Prefix() != "" {
		t.Errorf("out-of-range prefix = %q, want empty", Kind(9).Prefix())
	}
}

func TestLeaf(t *testing.T) {
	tests := []struct {
		token  string
		want   Kind
		wantOK bool
	}{
		{"PtFS", KindPart, true},
		{"PtFS-Tr1-Qu2", KindQuestion, true},
		{"PtFS-Tr1-Qu2-Ar1", KindArticle, true},
		{"", 0, false},
		{"Qu2", 0, false},
	}
	for _, tt := range tests {
		got, ok := Leaf(tt.token)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Leaf(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKindText(t *testing.T) {
	for k := KindPart; k <= KindArticle; k++ {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, back, err, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("chapter")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

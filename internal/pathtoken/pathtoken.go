// Package pathtoken parses and builds the hyphen-delimited tokens that
// address a node of the Summa, such as "PtFS-Tr1-Qu2-Ar3".
package pathtoken

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the level an identifier addresses.
type Kind int

const (
	KindPart Kind = iota
	KindTreatise
	KindQuestion
	KindArticle
)

// MaxDepth is the number of levels in a token.
const MaxDepth = 4

// Separator joins the segments of a token.
const Separator = "-"

// ErrInvalid is returned when a token does not follow the Pt-Tr-Qu-Ar grammar.
var ErrInvalid = errors.New("invalid path token")

var kindInfo = [MaxDepth]struct {
	prefix  string
	name    string
	pattern *regexp.Regexp
}{
	KindPart:     {"Pt", "part", regexp.MustCompile(`^Pt([A-Za-z0-9]+)$`)},
	KindTreatise: {"Tr", "treatise", regexp.MustCompile(`^Tr([0-9]+)$`)},
	KindQuestion: {"Qu", "question", regexp.MustCompile(`^Qu([0-9]+)$`)},
	KindArticle:  {"Ar", "article", regexp.MustCompile(`^Ar([0-9]+)$`)},
}

// Prefix returns the two-letter segment prefix of the kind.
func (k Kind) Prefix() string {
	if k < KindPart || k > KindArticle {
		return ""
	}
	return kindInfo[k].prefix
}

// String returns the lower-case level name ("part", "treatise", ...).
func (k Kind) String() string {
	if k < KindPart || k > KindArticle {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// MarshalText encodes the kind by its level name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindPart || k > KindArticle {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(kindInfo[k].name), nil
}

// UnmarshalText accepts the level names produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, info := range kindInfo {
		if info.name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

// ID is one parsed segment. Parts carry Code; the numbered levels carry Num.
type ID struct {
	Kind Kind
	Code string
	Num  int
}

// Part returns the identifier of a part.
func Part(code string) ID { return ID{Kind: KindPart, Code: code} }

// Treatise returns the identifier of a treatise.
func Treatise(n int) ID { return ID{Kind: KindTreatise, Num: n} }

// Question returns the identifier of a question.
func Question(n int) ID { return ID{Kind: KindQuestion, Num: n} }

// Article returns the identifier of an article.
func Article(n int) ID { return ID{Kind: KindArticle, Num: n} }

// String renders the segment as it appears in a token, e.g. "Qu2".
func (id ID) String() string {
	if id.Kind == KindPart {
		return id.Kind.Prefix() + id.Code
	}
	return id.Kind.Prefix() + strconv.Itoa(id.Num)
}

// Value returns the identifier as it is stored in the document: a string for
// parts, an int otherwise.
func (id ID) Value() any {
	if id.Kind == KindPart {
		return id.Code
	}
	return id.Num
}

// Parse splits token on "-" and matches each segment against the kind expected
// at its position. Any mismatch, including a fifth segment, yields ErrInvalid
// and no identifiers. The empty token parses to an empty, non-nil slice.
func Parse(token string) ([]ID, error) {
	ids := make([]ID, 0, MaxDepth)
	if token == "" {
		return ids, nil
	}

	for i, seg := range strings.Split(token, Separator) {
		if i >= MaxDepth {
			return nil, fmt.Errorf("%w: %q has more than %d segments", ErrInvalid, token, MaxDepth)
		}
		kind := Kind(i)
		m := kindInfo[kind].pattern.FindStringSubmatch(seg)
		if m == nil {
			return nil, fmt.Errorf("%w: segment %q is not a %s", ErrInvalid, seg, kind)
		}
		id := ID{Kind: kind}
		if kind == KindPart {
			id.Code = m[1]
		} else {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %s number %q out of range", ErrInvalid, kind, m[1])
			}
			id.Num = n
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Format joins identifiers back into a token. It is the inverse of Parse for
// any slice Parse returned.
func Format(ids []ID) string {
	segs := make([]string, len(ids))
	for i, id := range ids {
		segs[i] = id.String()
	}
	return strings.Join(segs, Separator)
}

// Build assembles the token for a part and up to three nested numbers:
// Build("FS", 1, 2) == "PtFS-Tr1-Qu2". Extra numbers are ignored.
func Build(part string, nums ...int) string {
	if len(nums) > MaxDepth-1 {
		nums = nums[:MaxDepth-1]
	}
	ids := make([]ID, 0, 1+len(nums))
	ids = append(ids, Part(part))
	for i, n := range nums {
		ids = append(ids, ID{Kind: Kind(i + 1), Num: n})
	}
	return Format(ids)
}

// Leaf returns the kind of the deepest identifier in a token, or false if the
// token is invalid or empty.
func Leaf(token string) (Kind, bool) {
	ids, err := Parse(token)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[len(ids)-1].Kind, true
}

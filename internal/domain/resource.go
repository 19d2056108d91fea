package domain

import "strings"

// Submission is a raw, decoded request payload before it is checked and
// converted into a typed record. JSON numbers arrive as float64 and JSON
// arrays as []any.
type Submission map[string]any

// ValueType is the JSON type a FieldRule expects.
type ValueType int

// Value types understood by FieldRule.
const (
	TypeAny ValueType = iota
	TypeNumber
	TypeString
	TypeList
)

// FieldRule is a single type/range check applied after presence checks pass.
// Tag is a go-playground/validator tag evaluated against the field value; when
// CompareTo is set the tag is evaluated against that sibling field's value
// (e.g. "gtefield").
type FieldRule struct {
	Field     string
	Type      ValueType
	Tag       string
	CompareTo string
	Message   string
}

// Kind describes one managed resource: where it lives and how submissions
// for it are validated. The generic service and handler layers are
// parameterised by a Kind instead of duplicating logic per resource.
type Kind struct {
	// Name is the singular, lower-case resource name ("game").
	Name string
	// Plural is the lower-case plural used in messages and routes ("games").
	Plural string
	// Collection is the document collection the records are stored in.
	Collection string
	// RequiredFields must all be present and non-empty.
	RequiredFields []string
	// Rules run in order once presence passes; the first failure wins.
	Rules []FieldRule
}

// Title returns the capitalised singular name ("Game").
func (k Kind) Title() string {
	return capitalize(k.Name)
}

// PluralTitle returns the capitalised plural name ("Games").
func (k Kind) PluralTitle() string {
	return capitalize(k.Plural)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

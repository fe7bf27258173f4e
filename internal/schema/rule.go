// Package schema validates an assembled wire tree against declarative rule
// records. Rules are plain data mirroring the authority's published document
// schema, so the validator can walk any node generically; no node type carries
// validation behaviour of its own.
package schema

import (
	"regexp"

	"github.com/rezonia/myinvois-gateway/internal/code"
)

// Kind is the expected scalar type of a leaf value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBool
)

// AttrRule constrains one leaf attribute.
type AttrRule struct {
	Name  string
	Label string
	// Required rejects an absent attribute; an empty value is additionally
	// rejected unless AllowEmpty is set.
	Required   bool
	AllowEmpty bool
	// Const requires the attribute to equal this exact value.
	Const string
	// Default is applied when the attribute is absent or empty, before checks.
	Default string
	MaxLen  int
	Enum    *code.List
	// DescEnum validates the attribute against the list's descriptions
	// instead of its codes (MSIC business description).
	DescEnum *code.List
}

// LeafRule constrains a leaf node's value and attributes.
type LeafRule struct {
	Label string
	Kind  Kind
	// Required rejects an empty value unless AllowEmpty is set.
	Required   bool
	AllowEmpty bool
	// AllowLiterals are values accepted unconditionally, bypassing length,
	// pattern and enum checks ("NA" identification entries).
	AllowLiterals []string
	MaxLen        int
	Pattern       *regexp.Regexp
	PatternMsg    string
	Enum          *code.List
	// Default is applied when the value is absent or empty, before checks.
	Default func() any
	Attrs   []AttrRule
	// CaseAttr selects a scheme-dependent length cap from CaseMaxLen; when
	// the attribute's value has no case, MaxLen applies.
	CaseAttr   string
	CaseMaxLen map[string]int
}

// Rule constrains one named field of a branch. A field's sequence elements
// are all leaves (Leaf set) or all branches (Branch set).
type Rule struct {
	Name     string
	Required bool
	MinItems int
	Leaf     *LeafRule
	Branch   []Rule
}

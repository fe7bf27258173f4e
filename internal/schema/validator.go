package schema

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// Validate walks the assembled wire tree against the rule set, collecting
// every violation in a single pass. It returns a defaulted copy of the tree:
// absent or empty values with a declared default come back filled in. The
// input tree is never modified.
func Validate(root *wire.Branch, rules []Rule) (*wire.Branch, []FieldError) {
	w := &walker{}
	out := w.branch("Invoice", root, rules)
	return out, w.errs
}

type walker struct {
	errs []FieldError
}

func (w *walker) add(path string, kind ErrorKind, rule, msg string) {
	w.errs = append(w.errs, FieldError{Path: path, Kind: kind, Rule: rule, Message: msg})
}

func (w *walker) branch(path string, b *wire.Branch, rules []Rule) *wire.Branch {
	out := wire.NewBranch()
	known := make(map[string]bool, len(rules))

	for _, r := range rules {
		known[r.Name] = true
		nodes, ok := b.Field(r.Name)
		if !ok {
			if r.Required {
				w.add(path+"."+r.Name, ErrStructural, "required", r.Name+" is required")
			}
			continue
		}
		if r.MinItems > 0 && len(nodes) < r.MinItems {
			w.add(path+"."+r.Name, ErrStructural, "min_items",
				fmt.Sprintf("%s must contain at least %d entries", r.Name, r.MinItems))
		}
		if len(nodes) == 0 {
			out.Append(r.Name)
			continue
		}

		outNodes := make([]wire.Node, 0, len(nodes))
		for i, n := range nodes {
			p := path + "." + r.Name
			if len(nodes) > 1 {
				p = fmt.Sprintf("%s[%d]", p, i)
			}
			switch {
			case r.Leaf != nil:
				leaf, isLeaf := n.(wire.Leaf)
				if !isLeaf {
					w.add(p, ErrStructural, "shape", r.Name+" must be a scalar entry")
					outNodes = append(outNodes, n)
					continue
				}
				outNodes = append(outNodes, w.leaf(p, leaf, r.Leaf))
			default:
				child, isBranch := n.(*wire.Branch)
				if !isBranch {
					w.add(p, ErrStructural, "shape", r.Name+" must be a nested section")
					outNodes = append(outNodes, n)
					continue
				}
				outNodes = append(outNodes, w.branch(p, child, r.Branch))
			}
		}
		out.Append(r.Name, outNodes...)
	}

	for _, f := range b.Fields() {
		if !known[f.Name] {
			w.add(path+"."+f.Name, ErrStructural, "unknown", f.Name+" is not allowed")
		}
	}
	return out
}

func (w *walker) leaf(path string, l wire.Leaf, r *LeafRule) wire.Leaf {
	out := l
	if isEmpty(out.Value) && r.Default != nil {
		out.Value = r.Default()
	}
	out = w.attrs(path, out, r)

	switch r.Kind {
	case KindString:
		w.stringValue(path, out, r)
	case KindNumber:
		if !isNumber(out.Value) {
			w.add(path, ErrFormat, "number", r.Label+" must be a number")
		}
	case KindInteger:
		if !isInteger(out.Value) {
			w.add(path, ErrFormat, "integer", r.Label+" must be an integer")
		}
	case KindBool:
		if _, ok := out.Value.(bool); !ok {
			w.add(path, ErrFormat, "boolean", r.Label+" must be true or false")
		}
	}
	return out
}

func (w *walker) attrs(path string, l wire.Leaf, r *LeafRule) wire.Leaf {
	out := l
	for _, ar := range r.Attrs {
		p := path + "." + ar.Name
		v, ok := out.Attr(ar.Name)
		if (!ok || v == "") && ar.Default != "" {
			out = out.WithAttr(ar.Name, ar.Default)
			v, ok = ar.Default, true
		}
		if !ok {
			if ar.Required {
				w.add(p, ErrStructural, "required", ar.Label+" is required")
			}
			continue
		}
		if v == "" {
			if ar.Required && !ar.AllowEmpty {
				w.add(p, ErrStructural, "required", ar.Label+" is required")
			}
			continue
		}
		if ar.Const != "" && v != ar.Const {
			w.add(p, ErrFormat, "const", fmt.Sprintf("%s must be %q", ar.Label, ar.Const))
			continue
		}
		if ar.MaxLen > 0 && utf8.RuneCountInString(v) > ar.MaxLen {
			w.add(p, ErrFormat, "max_length",
				fmt.Sprintf("%s must not exceed %d characters", ar.Label, ar.MaxLen))
		}
		if ar.Enum != nil && !ar.Enum.Has(v) {
			w.add(p, ErrCodeLookup, "enum", "Invalid "+ar.Label)
		}
		if ar.DescEnum != nil && !ar.DescEnum.HasDescription(v) {
			w.add(p, ErrCodeLookup, "enum", "Invalid "+ar.Label)
		}
	}
	return out
}

func (w *walker) stringValue(path string, l wire.Leaf, r *LeafRule) {
	s, ok := l.Value.(string)
	if !ok {
		w.add(path, ErrFormat, "string", r.Label+" must be a string")
		return
	}
	if s == "" {
		if r.Required && !r.AllowEmpty {
			w.add(path, ErrStructural, "required", r.Label+" cannot be empty")
		}
		return
	}
	for _, lit := range r.AllowLiterals {
		if s == lit {
			return
		}
	}

	max := r.MaxLen
	if r.CaseAttr != "" {
		if sv, ok := l.Attr(r.CaseAttr); ok {
			if m, ok := r.CaseMaxLen[sv]; ok {
				max = m
			}
		}
	}
	if max > 0 && utf8.RuneCountInString(s) > max {
		kind := ErrFormat
		if r.CaseAttr != "" {
			kind = ErrConditional
		}
		w.add(path, kind, "max_length",
			fmt.Sprintf("%s must not exceed %d characters", r.Label, max))
	}
	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		msg := r.PatternMsg
		if msg == "" {
			msg = r.Label + " has an invalid format"
		}
		w.add(path, ErrFormat, "pattern", msg)
	}
	if r.Enum != nil && !r.Enum.Has(s) {
		w.add(path, ErrCodeLookup, "enum", "Invalid "+r.Label)
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int64, float64, decimal.Decimal:
		return true
	}
	return false
}

func isInteger(v any) bool {
	switch x := v.(type) {
	case int, int64:
		return true
	case float64:
		return x == math.Trunc(x)
	case decimal.Decimal:
		return x.IsInteger()
	}
	return false
}

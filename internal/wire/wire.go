// Package wire models the UBL-style JSON wire shape expected by the MyInvois
// API: every node is wrapped in a one-element array, scalar values live under
// the "_" key and attributes sit beside it as plain keys. Field order is
// preserved exactly as written, so marshaling the same tree always produces
// the same bytes.
package wire

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Node is either a Leaf or a *Branch.
type Node interface {
	isNode()
	MarshalJSON() ([]byte, error)
}

// Attr is a named attribute rendered next to the "_" value of a leaf.
type Attr struct {
	Name  string
	Value string
}

// Leaf carries a single scalar value plus optional attributes.
// Supported value types: string, bool, int, int64, float64, decimal.Decimal.
type Leaf struct {
	Value any
	Attrs []Attr
}

func (Leaf) isNode() {}

// Attr returns the named attribute value, or "" when absent.
func (l Leaf) Attr(name string) (string, bool) {
	for _, a := range l.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// WithAttr returns a copy of the leaf with the attribute set, replacing an
// existing attribute of the same name.
func (l Leaf) WithAttr(name, value string) Leaf {
	attrs := make([]Attr, 0, len(l.Attrs)+1)
	replaced := false
	for _, a := range l.Attrs {
		if a.Name == name {
			attrs = append(attrs, Attr{Name: name, Value: value})
			replaced = true
			continue
		}
		attrs = append(attrs, a)
	}
	if !replaced {
		attrs = append(attrs, Attr{Name: name, Value: value})
	}
	return Leaf{Value: l.Value, Attrs: attrs}
}

// MarshalJSON renders {"_":<value>,"attr":"...",...} with attributes in
// declaration order.
func (l Leaf) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"_":`)
	if err := appendValue(&buf, l.Value); err != nil {
		return nil, err
	}
	for _, a := range l.Attrs {
		buf.WriteByte(',')
		appendString(&buf, a.Name)
		buf.WriteByte(':')
		appendString(&buf, a.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Field is one named slot of a branch, holding an ordered sequence of nodes.
// Logically-singular fields still carry a one-element sequence.
type Field struct {
	Name  string
	Nodes []Node
}

// Branch is an ordered collection of fields.
type Branch struct {
	fields []Field
}

func (*Branch) isNode() {}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{}
}

// Append adds a field with the given nodes. Appending to an existing field
// name extends its sequence, preserving the position of the first append.
func (b *Branch) Append(name string, nodes ...Node) *Branch {
	for i := range b.fields {
		if b.fields[i].Name == name {
			b.fields[i].Nodes = append(b.fields[i].Nodes, nodes...)
			return b
		}
	}
	b.fields = append(b.fields, Field{Name: name, Nodes: nodes})
	return b
}

// Field returns the node sequence for a field name.
func (b *Branch) Field(name string) ([]Node, bool) {
	for _, f := range b.fields {
		if f.Name == name {
			return f.Nodes, true
		}
	}
	return nil, false
}

// Fields returns the branch's fields in declaration order.
func (b *Branch) Fields() []Field {
	return b.fields
}

// Len returns the number of fields.
func (b *Branch) Len() int {
	return len(b.fields)
}

// MarshalJSON renders {"Name":[...],...} with fields in declaration order and
// every field as an array of its nodes.
func (b *Branch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range b.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendString(&buf, f.Name)
		buf.WriteString(":[")
		for j, n := range f.Nodes {
			if j > 0 {
				buf.WriteByte(',')
			}
			nb, err := n.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(nb)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString(`""`)
	case string:
		appendString(buf, x)
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case int:
		buf.WriteString(strconv.Itoa(x))
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case float64:
		buf.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	case decimal.Decimal:
		buf.WriteString(x.String())
	default:
		return fmt.Errorf("wire: unsupported leaf value type %T", v)
	}
	return nil
}

// appendString writes a JSON string literal. Escaping matches encoding/json
// for the characters the document fields may legally contain.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// Package code holds the fixed code lists the MyInvois document schema
// validates against. Lists are immutable after construction and the full set
// is built once; callers receive it by reference rather than reaching for
// package globals, so validators stay testable with trimmed-down sets.
package code

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// List is one enumerated code list. Lookup is by code; some lists (MSIC)
// also carry an official description per code.
type List struct {
	name  string
	codes map[string]string
}

func newList(name string, entries map[string]string) *List {
	return &List{name: name, codes: entries}
}

func newCodeList(name string, codes ...string) *List {
	m := make(map[string]string, len(codes))
	for _, c := range codes {
		m[c] = ""
	}
	return &List{name: name, codes: m}
}

// NewList builds an immutable list from plain codes. Intended for fixed enums
// owned by callers and for trimmed-down sets in tests.
func NewList(name string, codes ...string) *List {
	return newCodeList(name, codes...)
}

// NewDescribedList builds an immutable list of code/description pairs.
func NewDescribedList(name string, entries map[string]string) *List {
	m := make(map[string]string, len(entries))
	for c, d := range entries {
		m[c] = d
	}
	return newList(name, m)
}

// Name returns the human-readable list name used in validation messages.
func (l *List) Name() string { return l.name }

// Has reports whether the code is a member of the list.
func (l *List) Has(code string) bool {
	_, ok := l.codes[code]
	return ok
}

// HasDescription reports whether the description belongs to any code in the
// list. Used for MSIC descriptions, which the schema validates independently
// of the code.
func (l *List) HasDescription(desc string) bool {
	for _, d := range l.codes {
		if d != "" && d == desc {
			return true
		}
	}
	return false
}

// Description returns the official description for a code, or "".
func (l *List) Description(code string) string { return l.codes[code] }

// Len returns the number of codes in the list.
func (l *List) Len() int { return len(l.codes) }

// Codes returns the member codes in sorted order.
func (l *List) Codes() []string {
	out := make([]string, 0, len(l.codes))
	for c := range l.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Set bundles every registry the document schema depends on.
type Set struct {
	Currency       *List
	Country        *List
	State          *List
	TaxType        *List
	InvoiceType    *List
	PaymentMode    *List
	Classification *List
	UnitOfMeasure  *List
	Industry       *List

	dialCodes []string
	phoneOnce sync.Once
	phoneRe   *regexp.Regexp
}

// Phone returns the compiled phone pattern: a registered dial code followed
// by 6-12 digits.
func (s *Set) Phone() *regexp.Regexp {
	s.phoneOnce.Do(func() {
		escaped := make([]string, len(s.dialCodes))
		for i, d := range s.dialCodes {
			escaped[i] = regexp.QuoteMeta(d)
		}
		s.phoneRe = regexp.MustCompile(`^(` + strings.Join(escaped, "|") + `)\d{6,12}$`)
	})
	return s.phoneRe
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process-wide registry set, built on first use.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = &Set{
			Currency:       currencyList(),
			Country:        countryList(),
			State:          stateList(),
			TaxType:        taxTypeList(),
			InvoiceType:    invoiceTypeList(),
			PaymentMode:    paymentModeList(),
			Classification: classificationList(),
			UnitOfMeasure:  unitOfMeasureList(),
			Industry:       industryList(),
			dialCodes:      dialCodes,
		}
	})
	return defaultSet
}

// Package document models the MyInvois UBL invoice as a tree of immutable
// value and composite nodes. Every node is constructed once from caller
// primitives, projects itself onto the wire shape with ToWire (a pure
// projection that never fails), and exposes a declarative schema descriptor
// consumed by the schema validator. Assembly, validation and canonicalization
// are separate passes over the same tree.
package document

import (
	"regexp"
	"time"

	"github.com/rezonia/myinvois-gateway/internal/code"
)

// Wire format patterns shared across node schemas.
var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)Z$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
)

// Identification scheme tags accepted in PartyIdentification entries.
var idSchemes = code.NewList("Field Type",
	"NRIC", "PASSPORT", "BRN", "ARMY", "TIN", "SST", "TTX")

// Scheme-dependent identification length caps; anything else is capped at 12.
var idLengthByScheme = map[string]int{
	"BRN": 20,
	"SST": 35,
	"TTX": 17,
}

func nowDate() any { return time.Now().UTC().Format("2006-01-02") }
func nowTime() any { return time.Now().UTC().Format("15:04:05") + "Z" }

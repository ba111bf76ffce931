package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/theirongolddev/carerev/internal/model"
)

// ErrUnknownCode is returned when a rate override names a code outside the catalogs.
var ErrUnknownCode = errors.New("unknown billing code")

// CPT codes billed by the calculator.
const (
	Code99490 = "99490"
	Code99439 = "99439"
	Code99487 = "99487"
	Code99489 = "99489"

	Code99453 = "99453"
	Code99454 = "99454"
	Code99457 = "99457"
	Code99458 = "99458"
)

// BillingCode is a fixed-rate reimbursable service unit.
type BillingCode struct {
	Code        string
	Rate        float64
	Description string
	Program     model.Program
}

var ccmCodes = []BillingCode{
	{Code: Code99490, Rate: 60.49, Description: "Initial 20 minutes (clinical staff)", Program: model.ProgramCCM},
	{Code: Code99439, Rate: 45.93, Description: "Each additional 20 minutes (clinical staff)", Program: model.ProgramCCM},
	{Code: Code99487, Rate: 131.65, Description: "Complex CCM initial 60 minutes", Program: model.ProgramCCM},
	{Code: Code99489, Rate: 70.52, Description: "Complex CCM each additional 30 minutes", Program: model.ProgramCCM},
}

var rpmCodes = []BillingCode{
	{Code: Code99453, Rate: 19.73, Description: "Setup and patient education", Program: model.ProgramRPM},
	{Code: Code99454, Rate: 43.02, Description: "Device supply with daily recordings", Program: model.ProgramRPM},
	{Code: Code99457, Rate: 48.14, Description: "Initial 20 minutes of treatment management", Program: model.ProgramRPM},
	{Code: Code99458, Rate: 38.49, Description: "Each additional 20 minutes", Program: model.ProgramRPM},
}

// codeIndex maps code -> catalog entry, built once.
var codeIndex = buildCodeIndex()

func buildCodeIndex() map[string]BillingCode {
	idx := make(map[string]BillingCode, len(ccmCodes)+len(rpmCodes))
	for _, c := range ccmCodes {
		idx[c.Code] = c
	}
	for _, c := range rpmCodes {
		idx[c.Code] = c
	}
	return idx
}

// CCMCodes returns the Chronic Care Management catalog in display order.
func CCMCodes() []BillingCode { return slices.Clone(ccmCodes) }

// RPMCodes returns the Remote Patient Monitoring catalog in display order.
func RPMCodes() []BillingCode { return slices.Clone(rpmCodes) }

// AllCodes returns both catalogs, CCM first.
func AllCodes() []BillingCode {
	return slices.Concat(ccmCodes, rpmCodes)
}

// NormalizeCode trims whitespace and an optional "CPT" prefix.
// e.g., " CPT 99490 " -> "99490"
func NormalizeCode(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) > 3 && strings.EqualFold(s[:3], "cpt") {
		s = strings.TrimLeft(s[3:], " -:")
	}
	return s
}

// LookupCode returns the catalog entry for a code, normalizing it first.
func LookupCode(code string) (BillingCode, bool) {
	c, ok := codeIndex[NormalizeCode(code)]
	return c, ok
}

// RateTable maps billing code -> dollar rate.
type RateTable map[string]float64

// DefaultRates returns a fresh table populated from the catalogs.
func DefaultRates() RateTable {
	rates := make(RateTable, len(codeIndex))
	for _, c := range AllCodes() {
		rates[c.Code] = c.Rate
	}
	return rates
}

// Rate returns the rate for code, or 0 if the table has none.
func (r RateTable) Rate(code string) float64 {
	return r[code]
}

// WithOverrides returns a copy of r with the given rates replaced.
// r itself is left untouched. Codes outside the catalogs are rejected.
func (r RateTable) WithOverrides(overrides map[string]float64) (RateTable, error) {
	out := maps.Clone(r)
	if out == nil {
		out = make(RateTable)
	}

	codes := make([]string, 0, len(overrides))
	for code := range overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, raw := range codes {
		c, ok := LookupCode(raw)
		if !ok {
			return nil, fmt.Errorf("rate override %q: %w", raw, ErrUnknownCode)
		}
		out[c.Code] = overrides[raw]
	}
	return out, nil
}

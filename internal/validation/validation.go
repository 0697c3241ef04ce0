package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var (
	// 15-character GSTIN: state code, PAN, entity number, Z, check digit.
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	// Indian mobile numbers start with 6-9 and have 10 digits.
	phonePattern    = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// GSTIN checks the value against the GSTIN format. Empty values pass; the
// field is optional everywhere it appears.
func GSTIN(field, value string, v Violations) {
	if value == "" {
		return
	}
	if !gstinPattern.MatchString(value) {
		v[field] = "invalid_gstin"
	}
}

// Phone checks a 10-digit Indian mobile number, ignoring separators.
// Empty values pass.
func Phone(field, value string, v Violations) {
	if value == "" {
		return
	}
	if !phonePattern.MatchString(nonDigitPattern.ReplaceAllString(value, "")) {
		v[field] = "invalid_phone"
	}
}

// StateFromGSTIN maps the leading two digits of a GSTIN to a state name.
// Returns "" when the code is unknown or the value is too short.
func StateFromGSTIN(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	switch gstin[:2] {
	case "33":
		return "Tamil Nadu"
	case "09":
		return "Uttar Pradesh"
	case "27":
		return "Maharashtra"
	}
	return ""
}

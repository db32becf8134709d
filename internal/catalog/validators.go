package catalog

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidatorKind is a closed set of field-value checks. Keeping the catalog
// data-only (kind + parameter) instead of attaching arbitrary functions makes
// the field table serializable and portable.
type ValidatorKind int

const (
	// AllDigitsMinLen accepts values of N or more digits.
	AllDigitsMinLen ValidatorKind = iota
	// ExactDigits accepts values of exactly N digits.
	ExactDigits
	// DigitsMaxLen accepts non-empty values of at most N digits.
	DigitsMaxLen
	// PositiveInteger accepts integer values greater than zero.
	PositiveInteger
	// PositiveDecimal accepts decimal values greater than zero.
	PositiveDecimal
	// Decimal accepts any non-negative decimal value.
	Decimal
	// NonEmptyText accepts values of at least N characters that are not
	// purely numeric.
	NonEmptyText
	// UppercaseMinLen accepts uppercase values of at least N characters.
	UppercaseMinLen
)

// Validator pairs a ValidatorKind with its length parameter.
type Validator struct {
	Kind ValidatorKind
	N    int
}

// Validate interprets the validator against a cleaned candidate value.
func (v Validator) Validate(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	switch v.Kind {
	case AllDigitsMinLen:
		return allDigits(value) && len(value) >= v.N
	case ExactDigits:
		return allDigits(value) && len(value) == v.N
	case DigitsMaxLen:
		return allDigits(value) && len(value) <= v.N
	case PositiveInteger:
		if !allDigits(value) {
			return false
		}
		n, err := strconv.Atoi(value)
		return err == nil && n > 0
	case PositiveDecimal:
		f, ok := parseDecimal(value)
		return ok && f > 0
	case Decimal:
		_, ok := parseDecimal(value)
		return ok
	case NonEmptyText:
		return len([]rune(value)) >= v.N && !allDigits(value)
	case UppercaseMinLen:
		return len(value) >= v.N && value == strings.ToUpper(value)
	default:
		return false
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func parseDecimal(s string) (float64, bool) {
	stripped := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", "")
	if !allDigits(stripped) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

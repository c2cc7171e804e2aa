package app

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// separatorStripper drops the punctuation people type into phone and card
// numbers before the digit count is checked.
var separatorStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// Validator checks named form fields against their declared rules. Rules run
// in declaration order and the first failure wins.
type Validator struct {
	fields map[string][]domain.Rule
}

// NewValidator returns a validator with no fields registered.
func NewValidator() *Validator {
	return &Validator{fields: make(map[string][]domain.Rule)}
}

// Register declares the rules for a field, replacing any previous set.
func (v *Validator) Register(name string, rules ...domain.Rule) {
	v.fields[name] = rules
}

// NewCheckoutValidator returns the validator for the checkout form.
func NewCheckoutValidator() *Validator {
	v := NewValidator()
	v.Register("fullName",
		domain.Required{Msg: "Full name is required"},
		domain.MinLength{N: 2, Msg: "Full name must be at least 2 characters"},
	)
	v.Register("email",
		domain.Required{Msg: "Email is required"},
		domain.Format{Kind: domain.FormatEmail, Msg: "Please enter a valid email address"},
	)
	v.Register("phone",
		domain.Required{Msg: "Phone number is required"},
		domain.Format{Kind: domain.FormatPhone, Msg: "Please enter a valid 10-digit phone number"},
	)
	v.Register("address",
		domain.Required{Msg: "Address is required"},
		domain.MinLength{N: 5, Msg: "Please enter a complete address"},
	)
	v.Register("city",
		domain.Required{Msg: "City is required"},
		domain.MinLength{N: 2, Msg: "Please enter a valid city"},
	)
	v.Register("zip",
		domain.Required{Msg: "ZIP code is required"},
		domain.Format{Kind: domain.FormatZip, Msg: "Please enter a valid ZIP code"},
	)
	v.Register("cardName",
		domain.Required{Msg: "Name on card is required"},
		domain.MinLength{N: 2, Msg: "Please enter the name on the card"},
	)
	v.Register("cardNumber",
		domain.Required{Msg: "Card number is required"},
		domain.Format{Kind: domain.FormatCardNumber, Msg: "Please enter a valid 16-digit card number"},
	)
	v.Register("expiry",
		domain.Required{Msg: "Expiry date is required"},
		domain.Format{Kind: domain.FormatExpiry, Msg: "Please use MM/YY format"},
	)
	v.Register("cvv",
		domain.Required{Msg: "CVV is required"},
		domain.Format{Kind: domain.FormatCVV, Msg: "Please enter a valid CVV"},
	)
	return v
}

// ValidateField checks one field value. Fields without registered rules are
// always valid.
func (v *Validator) ValidateField(name, value string) domain.FieldResult {
	trimmed := strings.TrimSpace(value)

	for _, rule := range v.fields[name] {
		if trimmed == "" {
			if _, isRequired := rule.(domain.Required); isRequired {
				return domain.FieldResult{Name: name, Valid: false, Message: rule.Message()}
			}
			// Rules other than Required only apply once a value is present.
			continue
		}

		switch r := rule.(type) {
		case domain.Required:
			// Non-empty value satisfies it.
		case domain.MinLength:
			if utf8.RuneCountInString(trimmed) < r.N {
				return domain.FieldResult{Name: name, Valid: false, Message: r.Message()}
			}
		case domain.Format:
			if !matchesFormat(r.Kind, trimmed) {
				return domain.FieldResult{Name: name, Valid: false, Message: r.Message()}
			}
		}
	}

	return domain.FieldResult{Name: name, Valid: true}
}

// ValidateAll reports whether every registered field passes its rules
// against the submitted form. A field missing from the form counts as empty,
// so omitting a required field fails the same way as leaving it blank.
func (v *Validator) ValidateAll(fields map[string]string) bool {
	for name := range v.fields {
		if !v.ValidateField(name, fields[name]).Valid {
			return false
		}
	}
	return true
}

// Results validates every registered field and returns the failing ones,
// sorted by field name for stable rendering. Missing form keys count as
// empty values, exactly as in ValidateAll.
func (v *Validator) Results(fields map[string]string) []domain.FieldResult {
	var out []domain.FieldResult
	for name := range v.fields {
		if res := v.ValidateField(name, fields[name]); !res.Valid {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func matchesFormat(kind domain.FormatKind, value string) bool {
	switch kind {
	case domain.FormatEmail:
		return emailRe.MatchString(value)
	case domain.FormatPhone:
		return digitsOnly(separatorStripper.Replace(value), 10)
	case domain.FormatZip:
		return zipRe.MatchString(value)
	case domain.FormatCardNumber:
		return digitsOnly(separatorStripper.Replace(value), 16)
	case domain.FormatExpiry:
		return expiryRe.MatchString(value)
	case domain.FormatCVV:
		return cvvRe.MatchString(value)
	default:
		return false
	}
}

// digitsOnly reports whether s is exactly n ASCII digits.
func digitsOnly(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

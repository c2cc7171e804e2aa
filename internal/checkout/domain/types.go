package domain

import "time"

// FormatKind names a value shape a field can be checked against.
type FormatKind string

const (
	FormatEmail      FormatKind = "email"
	FormatPhone      FormatKind = "phone"
	FormatZip        FormatKind = "zip"
	FormatCardNumber FormatKind = "cardNumber"
	FormatExpiry     FormatKind = "expiry"
	FormatCVV        FormatKind = "cvv"
)

// Rule is one validation constraint on a form field. The variants are a
// closed set so a validator can switch over them exhaustively instead of
// probing optional fields.
type Rule interface {
	// Message is the human-readable error reported when the rule fails.
	Message() string

	rule()
}

// Required fails on an empty (or whitespace-only) value. It is the only rule
// that applies to empty values; all other rules pass when the value is empty.
type Required struct {
	Msg string
}

// MinLength fails when a present value is shorter than N characters.
type MinLength struct {
	N   int
	Msg string
}

// Format fails when a present value does not match the named shape.
type Format struct {
	Kind FormatKind
	Msg  string
}

func (r Required) Message() string  { return r.Msg }
func (r MinLength) Message() string { return r.Msg }
func (r Format) Message() string    { return r.Msg }

func (Required) rule()  {}
func (MinLength) rule() {}
func (Format) rule()    {}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Name    string
	Valid   bool
	Message string
}

// OrderLine is one priced line of a placed order.
type OrderLine struct {
	ProductID int64
	Title     string
	Quantity  int64
	UnitPrice float64
	LineTotal float64
}

// Order is the synthetic order produced by a successful checkout. Number is
// the customer-facing identifier; ID is internal.
type Order struct {
	ID        string
	Number    string
	Email     string
	Lines     []OrderLine
	Subtotal  float64
	Tax       float64
	Total     float64
	CreatedAt time.Time
}

// Confirmation is the view state presented after an order is placed.
type Confirmation struct {
	Email       string
	OrderNumber string
	Total       float64
}

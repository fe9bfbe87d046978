// Package document contains the pure business logic for business documents:
// document types, document-number sequencing, and total computation.
// This is part of the Functional Core - no I/O, only pure functions.
package document

import "fmt"

// Type identifies a business document variant. It is a closed enum; every
// variant maps to exactly one physical table via an exhaustive switch, so
// adding a type is a compile-time-checked change.
type Type int

const (
	Invoice Type = iota
	Quote
	DeliveryNote
)

// String returns the wire/CLI form of the type.
func (t Type) String() string {
	switch t {
	case Invoice:
		return "invoice"
	case Quote:
		return "quote"
	case DeliveryNote:
		return "delivery_note"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Table returns the physical table backing the type.
func (t Type) Table() string {
	switch t {
	case Invoice:
		return "invoices"
	case Quote:
		return "quotes"
	case DeliveryNote:
		return "delivery_notes"
	}
	return ""
}

// Valid reports whether t is one of the declared variants.
func (t Type) Valid() bool {
	switch t {
	case Invoice, Quote, DeliveryNote:
		return true
	}
	return false
}

// ParseType converts the string form used by the CLI and the original
// storage layer into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "invoice":
		return Invoice, nil
	case "quote":
		return Quote, nil
	case "delivery_note":
		return DeliveryNote, nil
	}
	return 0, fmt.Errorf("invalid document type: %q", s)
}

// StatusConverted is the literal status a quote receives when an invoice or
// delivery note is derived from it.
const StatusConverted = "Converted"

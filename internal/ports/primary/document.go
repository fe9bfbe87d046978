// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI and other surfaces call.
package primary

import (
	"context"
	"time"

	"github.com/example/factogo/internal/core/document"
)

// Document is the service-level view of a business document, with items
// decoded from their persisted JSON form.
type Document struct {
	ID             int64
	Type           document.Type
	DocumentNumber string
	StoreID        int64
	ClientName     string
	Date           string
	Items          []document.LineItem
	Total          float64
	DiscountType   string
	DiscountValue  float64
	Status         string
	OrderReference string
	PaymentMethod  string
}

// CreateDocumentRequest carries everything needed to create a document.
// The service derives the document number and computes the total; callers
// never supply either. ConvertedFromID, when non-zero, identifies the quote
// this invoice or delivery note is derived from.
type CreateDocumentRequest struct {
	StoreID         int64
	Type            document.Type
	ClientName      string
	Date            string
	Items           []document.LineItem
	DiscountType    string
	DiscountValue   float64
	Status          string
	OrderReference  string
	PaymentMethod   string
	ConvertedFromID int64

	// Now anchors the numbering period. The zero value means time.Now().
	Now time.Time
}

// UpdateDocumentRequest carries the mutable fields of a full-row overwrite.
// The total is recomputed from Items and the discount.
type UpdateDocumentRequest struct {
	ID             int64
	Type           document.Type
	DocumentNumber string
	ClientName     string
	Date           string
	Items          []document.LineItem
	DiscountType   string
	DiscountValue  float64
	Status         string
	OrderReference string
	PaymentMethod  string
}

// DocumentService is the primary port for document lifecycle operations.
type DocumentService interface {
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error)
	GetDocument(ctx context.Context, docType document.Type, id int64) (*Document, error)
	ListDocuments(ctx context.Context, docType document.Type, storeID int64) ([]*Document, error)
	UpdateDocument(ctx context.Context, req UpdateDocumentRequest) error
	DeleteDocument(ctx context.Context, docType document.Type, id int64) error

	// NextDocumentNumber previews the next number for the store, type and
	// period of now without reserving it.
	NextDocumentNumber(ctx context.Context, storeID int64, docType document.Type, now time.Time) (string, error)
}

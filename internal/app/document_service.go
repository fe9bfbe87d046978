// Package app contains the service implementations behind the primary
// ports. Services orchestrate repositories and the functional core; they
// hold no connection state of their own.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
)

// DocumentServiceImpl implements the DocumentService interface.
type DocumentServiceImpl struct {
	docRepo secondary.DocumentRepository
}

// NewDocumentService creates a new DocumentService with injected dependencies.
func NewDocumentService(docRepo secondary.DocumentRepository) *DocumentServiceImpl {
	return &DocumentServiceImpl{docRepo: docRepo}
}

// NextDocumentNumber derives the next number for the store, type and period
// of now from the existing rows. The number is not reserved: a concurrent
// caller can observe the same maximum and compute the same result.
func (s *DocumentServiceImpl) NextDocumentNumber(ctx context.Context, storeID int64, docType document.Type, now time.Time) (string, error) {
	if !docType.Valid() {
		return "", fmt.Errorf("invalid document type: %v", docType)
	}

	last, err := s.docRepo.LastNumberForPeriod(ctx, docType, storeID, document.PeriodSuffix(now))
	if err != nil {
		return "", fmt.Errorf("failed to get last document number: %w", err)
	}

	next, err := document.NextNumber(last, now)
	if err != nil {
		return "", fmt.Errorf("failed to compute next document number: %w", err)
	}
	return next, nil
}

// CreateDocument creates a document for a store. The document number is
// derived from the period of req.Now and the total is computed from the
// items and discount. When ConvertedFromID is set, the insert and the
// quote's status flip to Converted happen in one transaction.
func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, req primary.CreateDocumentRequest) (*primary.Document, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("invalid document type: %v", req.Type)
	}
	if req.StoreID == 0 {
		return nil, fmt.Errorf("store id is required")
	}
	if req.ClientName == "" {
		return nil, fmt.Errorf("client name is required")
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	number, err := s.NextDocumentNumber(ctx, req.StoreID, req.Type, now)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	items, err := encodeItems(req.Items)
	if err != nil {
		return nil, err
	}

	rec := &secondary.DocumentRecord{
		DocumentNumber: number,
		ClientName:     req.ClientName,
		Date:           date,
		Items:          items,
		Total:          totalFor(req.Type, req.Items, req.DiscountType, req.DiscountValue),
		StoreID:        req.StoreID,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		Status:         req.Status,
		OrderReference: req.OrderReference,
		PaymentMethod:  req.PaymentMethod,
	}

	var id int64
	if req.ConvertedFromID != 0 {
		id, err = s.docRepo.CreateConverted(ctx, req.Type, rec, req.ConvertedFromID)
	} else {
		id, err = s.docRepo.Create(ctx, req.Type, rec)
	}
	if err != nil {
		return nil, err
	}
	rec.ID = id

	return recordToDocument(req.Type, rec)
}

// GetDocument retrieves a document by row id.
func (s *DocumentServiceImpl) GetDocument(ctx context.Context, docType document.Type, id int64) (*primary.Document, error) {
	rec, err := s.docRepo.GetByID(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	return recordToDocument(docType, rec)
}

// ListDocuments returns the store's documents, newest first.
func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, docType document.Type, storeID int64) ([]*primary.Document, error) {
	recs, err := s.docRepo.ListForStore(ctx, docType, storeID)
	if err != nil {
		return nil, err
	}

	docs := make([]*primary.Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := recordToDocument(docType, rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// UpdateDocument overwrites the document's mutable fields, recomputing the
// total. The stored document number is a display copy; changing it does not
// affect the numbering scope.
func (s *DocumentServiceImpl) UpdateDocument(ctx context.Context, req primary.UpdateDocumentRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("invalid document type: %v", req.Type)
	}

	items, err := encodeItems(req.Items)
	if err != nil {
		return err
	}

	rec := &secondary.DocumentRecord{
		DocumentNumber: req.DocumentNumber,
		ClientName:     req.ClientName,
		Date:           req.Date,
		Items:          items,
		Total:          totalFor(req.Type, req.Items, req.DiscountType, req.DiscountValue),
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		Status:         req.Status,
		OrderReference: req.OrderReference,
		PaymentMethod:  req.PaymentMethod,
	}

	return s.docRepo.Update(ctx, req.Type, req.ID, rec)
}

// DeleteDocument hard-deletes a document.
func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, docType document.Type, id int64) error {
	return s.docRepo.Delete(ctx, docType, id)
}

func totalFor(docType document.Type, items []document.LineItem, discountType string, discountValue float64) float64 {
	if docType == document.DeliveryNote {
		return document.QuantityTotal(items)
	}
	return document.Total(items, discountType, discountValue)
}

func encodeItems(items []document.LineItem) (string, error) {
	if items == nil {
		items = []document.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}
	return string(data), nil
}

func recordToDocument(docType document.Type, rec *secondary.DocumentRecord) (*primary.Document, error) {
	var items []document.LineItem
	if rec.Items != "" {
		if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
			return nil, fmt.Errorf("failed to decode items of %s %d: %w", docType, rec.ID, err)
		}
	}

	return &primary.Document{
		ID:             rec.ID,
		Type:           docType,
		DocumentNumber: rec.DocumentNumber,
		StoreID:        rec.StoreID,
		ClientName:     rec.ClientName,
		Date:           rec.Date,
		Items:          items,
		Total:          rec.Total,
		DiscountType:   rec.DiscountType,
		DiscountValue:  rec.DiscountValue,
		Status:         rec.Status,
		OrderReference: rec.OrderReference,
		PaymentMethod:  rec.PaymentMethod,
	}, nil
}

// Ensure DocumentServiceImpl implements the interface
var _ primary.DocumentService = (*DocumentServiceImpl)(nil)

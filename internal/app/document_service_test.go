package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
)

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
}

func createReq(storeID int64, docType document.Type, now time.Time) primary.CreateDocumentRequest {
	return primary.CreateDocumentRequest{
		StoreID:    storeID,
		Type:       docType,
		ClientName: "ACME",
		Items: []document.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: 50},
		},
		Now: now,
	}
}

func TestCreateDocument_SequentialNumbering(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	// Three sequential creates in March 2025 number gap-free.
	for i, want := range []string{"001/03/2025", "002/03/2025", "003/03/2025"} {
		doc, err := svc.CreateDocument(ctx, createReq(1, document.Invoice, march(i+1)))
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if doc.DocumentNumber != want {
			t.Errorf("document %d number = %q, want %q", i, doc.DocumentNumber, want)
		}
	}

	// A fourth create in April restarts the sequence.
	doc, err := svc.CreateDocument(ctx, createReq(1, document.Invoice, time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("april create failed: %v", err)
	}
	if doc.DocumentNumber != "001/04/2025" {
		t.Errorf("april number = %q, want 001/04/2025", doc.DocumentNumber)
	}
}

func TestCreateDocument_NumberingScopedByStoreAndType(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	if _, err := svc.CreateDocument(ctx, createReq(1, document.Invoice, march(1))); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another store and another type both start at 001.
	doc, err := svc.CreateDocument(ctx, createReq(2, document.Invoice, march(1)))
	if err != nil {
		t.Fatalf("create for store 2 failed: %v", err)
	}
	if doc.DocumentNumber != "001/03/2025" {
		t.Errorf("store 2 number = %q, want 001/03/2025", doc.DocumentNumber)
	}

	doc, err = svc.CreateDocument(ctx, createReq(1, document.Quote, march(1)))
	if err != nil {
		t.Fatalf("quote create failed: %v", err)
	}
	if doc.DocumentNumber != "001/03/2025" {
		t.Errorf("quote number = %q, want 001/03/2025", doc.DocumentNumber)
	}
}

func TestCreateDocument_DiscountTotals(t *testing.T) {
	tests := []struct {
		name          string
		discountType  string
		discountValue float64
		want          float64
	}{
		{name: "percentage", discountType: document.DiscountPercentage, discountValue: 10, want: 90},
		{name: "fixed", discountType: document.DiscountFixed, discountValue: 20, want: 80},
		{name: "none", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockDocumentRepo()
			svc := NewDocumentService(repo)

			req := createReq(1, document.Invoice, march(1))
			req.DiscountType = tt.discountType
			req.DiscountValue = tt.discountValue

			doc, err := svc.CreateDocument(context.Background(), req)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if doc.Total != tt.want {
				t.Errorf("Total = %v, want %v", doc.Total, tt.want)
			}
		})
	}
}

func TestCreateDocument_DeliveryNoteTotalSumsQuantities(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)

	req := createReq(1, document.DeliveryNote, march(1))
	req.Items = []document.LineItem{
		{Description: "Pallet", Quantity: 3},
		{Description: "Box", Quantity: 12},
	}
	req.OrderReference = "PO-77"
	req.PaymentMethod = "cash"

	doc, err := svc.CreateDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if doc.Total != 15 {
		t.Errorf("Total = %v, want 15 (summed quantities)", doc.Total)
	}
	if doc.OrderReference != "PO-77" || doc.PaymentMethod != "cash" {
		t.Errorf("delivery fields = %q/%q", doc.OrderReference, doc.PaymentMethod)
	}
}

func TestCreateDocument_Conversion(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	quote, err := svc.CreateDocument(ctx, createReq(1, document.Quote, march(1)))
	if err != nil {
		t.Fatalf("quote create failed: %v", err)
	}

	req := createReq(1, document.Invoice, march(2))
	req.ConvertedFromID = quote.ID
	if _, err := svc.CreateDocument(ctx, req); err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	converted, err := svc.GetDocument(ctx, document.Quote, quote.ID)
	if err != nil {
		t.Fatalf("quote lookup failed: %v", err)
	}
	if converted.Status != document.StatusConverted {
		t.Errorf("quote status = %q, want %q", converted.Status, document.StatusConverted)
	}
}

func TestCreateDocument_ConversionMissingQuote(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)

	req := createReq(1, document.Invoice, march(1))
	req.ConvertedFromID = 99
	if _, err := svc.CreateDocument(context.Background(), req); !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateDocument_Validation(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	req := createReq(0, document.Invoice, march(1))
	if _, err := svc.CreateDocument(ctx, req); err == nil {
		t.Error("missing store id should fail")
	}

	req = createReq(1, document.Invoice, march(1))
	req.ClientName = ""
	if _, err := svc.CreateDocument(ctx, req); err == nil {
		t.Error("missing client name should fail")
	}

	req = createReq(1, document.Type(99), march(1))
	if _, err := svc.CreateDocument(ctx, req); err == nil {
		t.Error("invalid document type should fail")
	}
}

func TestCreateDocument_RepoFailurePropagates(t *testing.T) {
	repo := newMockDocumentRepo()
	repo.createErr = fmt.Errorf("disk full")
	svc := NewDocumentService(repo)

	if _, err := svc.CreateDocument(context.Background(), createReq(1, document.Invoice, march(1))); err == nil {
		t.Error("repository failure must propagate")
	}
}

func TestUpdateDocument_RecomputesTotal(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	doc, err := svc.CreateDocument(ctx, createReq(1, document.Invoice, march(1)))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = svc.UpdateDocument(ctx, primary.UpdateDocumentRequest{
		ID:             doc.ID,
		Type:           document.Invoice,
		DocumentNumber: doc.DocumentNumber,
		ClientName:     "ACME",
		Date:           doc.Date,
		Items: []document.LineItem{
			{Description: "Widget", Quantity: 4, UnitPrice: 50},
		},
		DiscountType:  document.DiscountFixed,
		DiscountValue: 50,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.GetDocument(ctx, document.Invoice, doc.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Total != 150 {
		t.Errorf("Total = %v, want 150 (4*50 - 50)", got.Total)
	}
	if got.StoreID != 1 {
		t.Errorf("StoreID = %d, update must not touch scoping", got.StoreID)
	}
}

func TestNextDocumentNumber_PreviewDoesNotReserve(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	first, err := svc.NextDocumentNumber(ctx, 1, document.Invoice, march(1))
	if err != nil {
		t.Fatalf("NextDocumentNumber failed: %v", err)
	}
	second, err := svc.NextDocumentNumber(ctx, 1, document.Invoice, march(1))
	if err != nil {
		t.Fatalf("NextDocumentNumber failed: %v", err)
	}
	if first != second || first != "001/03/2025" {
		t.Errorf("previews = %q, %q; want both 001/03/2025", first, second)
	}
}

func TestListDocuments_DecodesItems(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := NewDocumentService(repo)
	ctx := context.Background()

	if _, err := svc.CreateDocument(ctx, createReq(1, document.Invoice, march(1))); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	docs, err := svc.ListDocuments(ctx, document.Invoice, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if len(docs[0].Items) != 1 || docs[0].Items[0].Description != "Widget" {
		t.Errorf("items not decoded: %+v", docs[0].Items)
	}
}

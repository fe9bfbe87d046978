package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/secondary"
)

// Ensure mockDocumentRepo implements the interface
var _ secondary.DocumentRepository = (*mockDocumentRepo)(nil)

// mockDocumentRepo implements secondary.DocumentRepository in memory,
// mirroring the table-per-type layout of the real adapter.
type mockDocumentRepo struct {
	docs      map[document.Type][]*secondary.DocumentRecord
	nextID    int64
	createErr error
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: make(map[document.Type][]*secondary.DocumentRecord)}
}

func (m *mockDocumentRepo) insert(docType document.Type, rec *secondary.DocumentRecord) int64 {
	m.nextID++
	stored := *rec
	stored.ID = m.nextID
	m.docs[docType] = append(m.docs[docType], &stored)
	return stored.ID
}

func (m *mockDocumentRepo) Create(ctx context.Context, docType document.Type, rec *secondary.DocumentRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.insert(docType, rec), nil
}

func (m *mockDocumentRepo) CreateConverted(ctx context.Context, docType document.Type, rec *secondary.DocumentRecord, convertedFromID int64) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	quote := m.find(document.Quote, convertedFromID)
	if quote == nil {
		return 0, fmt.Errorf("quote %d: %w", convertedFromID, secondary.ErrNotFound)
	}
	id := m.insert(docType, rec)
	quote.Status = document.StatusConverted
	return id, nil
}

func (m *mockDocumentRepo) find(docType document.Type, id int64) *secondary.DocumentRecord {
	for _, rec := range m.docs[docType] {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, docType document.Type, id int64) (*secondary.DocumentRecord, error) {
	rec := m.find(docType, id)
	if rec == nil {
		return nil, fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
	}
	return rec, nil
}

func (m *mockDocumentRepo) ListForStore(ctx context.Context, docType document.Type, storeID int64) ([]*secondary.DocumentRecord, error) {
	var out []*secondary.DocumentRecord
	recs := m.docs[docType]
	for i := len(recs) - 1; i >= 0; i-- {
		if recs[i].StoreID == storeID {
			out = append(out, recs[i])
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) Update(ctx context.Context, docType document.Type, id int64, rec *secondary.DocumentRecord) error {
	stored := m.find(docType, id)
	if stored == nil {
		return fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
	}
	storeID := stored.StoreID
	*stored = *rec
	stored.ID = id
	stored.StoreID = storeID
	return nil
}

func (m *mockDocumentRepo) Delete(ctx context.Context, docType document.Type, id int64) error {
	recs := m.docs[docType]
	for i, rec := range recs {
		if rec.ID == id {
			m.docs[docType] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
}

func (m *mockDocumentRepo) LastNumberForPeriod(ctx context.Context, docType document.Type, storeID int64, periodSuffix string) (string, error) {
	best := ""
	bestSeq := 0
	for _, rec := range m.docs[docType] {
		if rec.StoreID != storeID || !strings.HasSuffix(rec.DocumentNumber, periodSuffix) {
			continue
		}
		seq, err := document.ParseSequence(rec.DocumentNumber)
		if err != nil {
			continue
		}
		if seq > bestSeq {
			bestSeq = seq
			best = rec.DocumentNumber
		}
	}
	return best, nil
}

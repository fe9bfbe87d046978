package app

import (
	"context"
	"fmt"

	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
)

// StoreServiceImpl implements the StoreService interface.
type StoreServiceImpl struct {
	storeRepo secondary.StoreRepository
}

// NewStoreService creates a new StoreService with injected dependencies.
func NewStoreService(storeRepo secondary.StoreRepository) *StoreServiceImpl {
	return &StoreServiceImpl{storeRepo: storeRepo}
}

// CreateStore creates a new active store.
func (s *StoreServiceImpl) CreateStore(ctx context.Context, req primary.CreateStoreRequest) (*primary.Store, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("store name is required")
	}

	rec := &secondary.StoreRecord{
		OwnerUserID:        req.OwnerUserID,
		Name:               req.Name,
		LogoURL:            req.LogoURL,
		SignatureURL:       req.SignatureURL,
		StampURL:           req.StampURL,
		DocumentTemplateID: req.DocumentTemplateID,
		CustomTexts:        req.CustomTexts,
		Status:             secondary.StoreStatusActive,
	}

	id, err := s.storeRepo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	return storeRecordToStore(rec), nil
}

// GetStore retrieves a store by id, archived or not.
func (s *StoreServiceImpl) GetStore(ctx context.Context, id int64) (*primary.Store, error) {
	rec, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return storeRecordToStore(rec), nil
}

// ListStoresForUser returns the user's non-archived stores.
func (s *StoreServiceImpl) ListStoresForUser(ctx context.Context, ownerUserID int64) ([]*primary.Store, error) {
	recs, err := s.storeRepo.ListForUser(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	return storeRecordsToStores(recs), nil
}

// ListActiveStores returns all non-archived stores.
func (s *StoreServiceImpl) ListActiveStores(ctx context.Context) ([]*primary.Store, error) {
	recs, err := s.storeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return storeRecordsToStores(recs), nil
}

// UpdateStore overwrites the store's editable fields.
func (s *StoreServiceImpl) UpdateStore(ctx context.Context, req primary.UpdateStoreRequest) error {
	if req.Name == "" {
		return fmt.Errorf("store name is required")
	}

	return s.storeRepo.Update(ctx, req.ID, &secondary.StoreRecord{
		Name:               req.Name,
		LogoURL:            req.LogoURL,
		SignatureURL:       req.SignatureURL,
		StampURL:           req.StampURL,
		DocumentTemplateID: req.DocumentTemplateID,
		CustomTexts:        req.CustomTexts,
	})
}

// ArchiveStore soft-deletes the store. Its documents and historical
// numbering remain intact.
func (s *StoreServiceImpl) ArchiveStore(ctx context.Context, id int64) error {
	return s.storeRepo.Archive(ctx, id)
}

func storeRecordToStore(rec *secondary.StoreRecord) *primary.Store {
	return &primary.Store{
		ID:                 rec.ID,
		OwnerUserID:        rec.OwnerUserID,
		Name:               rec.Name,
		LogoURL:            rec.LogoURL,
		SignatureURL:       rec.SignatureURL,
		StampURL:           rec.StampURL,
		DocumentTemplateID: rec.DocumentTemplateID,
		CustomTexts:        rec.CustomTexts,
		Status:             rec.Status,
	}
}

func storeRecordsToStores(recs []*secondary.StoreRecord) []*primary.Store {
	stores := make([]*primary.Store, 0, len(recs))
	for _, rec := range recs {
		stores = append(stores, storeRecordToStore(rec))
	}
	return stores
}

// Ensure StoreServiceImpl implements the interface
var _ primary.StoreService = (*StoreServiceImpl)(nil)

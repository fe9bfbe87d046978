package primary

import "context"

// Store is the service-level view of a store.
type Store struct {
	ID                 int64
	OwnerUserID        int64
	Name               string
	LogoURL            string
	SignatureURL       string
	StampURL           string
	DocumentTemplateID int64
	CustomTexts        string
	Status             string
}

// CreateStoreRequest carries the fields of a new store. Status is always
// set to active by the service.
type CreateStoreRequest struct {
	OwnerUserID        int64
	Name               string
	LogoURL            string
	SignatureURL       string
	StampURL           string
	DocumentTemplateID int64
	CustomTexts        string
}

// UpdateStoreRequest carries the mutable store fields. Ownership and status
// are not updatable through this path; archiving has its own operation.
type UpdateStoreRequest struct {
	ID                 int64
	Name               string
	LogoURL            string
	SignatureURL       string
	StampURL           string
	DocumentTemplateID int64
	CustomTexts        string
}

// StoreService is the primary port for store operations.
type StoreService interface {
	CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error)
	GetStore(ctx context.Context, id int64) (*Store, error)
	ListStoresForUser(ctx context.Context, ownerUserID int64) ([]*Store, error)
	ListActiveStores(ctx context.Context) ([]*Store, error)
	UpdateStore(ctx context.Context, req UpdateStoreRequest) error

	// ArchiveStore soft-deletes the store; its documents stay addressable.
	ArchiveStore(ctx context.Context, id int64) error
}

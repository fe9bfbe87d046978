// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which services reach persistence.
package secondary

import (
	"context"
	"errors"

	"github.com/example/factogo/internal/core/document"
)

// ErrNotFound is returned by single-row lookups when no row matches.
// List operations return empty slices instead.
var ErrNotFound = errors.New("not found")

// DocumentRecord represents a document row as stored in persistence. The
// same record serves all three document types; OrderReference/PaymentMethod
// apply to delivery notes only and DiscountType/DiscountValue/Status to
// invoices and quotes only.
type DocumentRecord struct {
	ID             int64
	DocumentNumber string
	ClientName     string
	Date           string // ISO calendar date, YYYY-MM-DD
	Items          string // JSON-encoded []document.LineItem
	Total          float64
	StoreID        int64
	DiscountType   string // "" when no discount
	DiscountValue  float64
	Status         string
	OrderReference string
	PaymentMethod  string
}

// DocumentRepository is the secondary port for the three document tables.
type DocumentRepository interface {
	// Create inserts a new document scoped to rec.StoreID and returns the
	// assigned row id.
	Create(ctx context.Context, docType document.Type, rec *DocumentRecord) (int64, error)

	// CreateConverted inserts a new invoice or delivery note derived from
	// the quote convertedFromID, flipping that quote's status to Converted
	// in the same transaction. Either both changes persist or neither does.
	CreateConverted(ctx context.Context, docType document.Type, rec *DocumentRecord, convertedFromID int64) (int64, error)

	// GetByID retrieves a document by row id. Misses return ErrNotFound.
	GetByID(ctx context.Context, docType document.Type, id int64) (*DocumentRecord, error)

	// ListForStore returns every document of the store, newest row id first.
	ListForStore(ctx context.Context, docType document.Type, storeID int64) ([]*DocumentRecord, error)

	// Update overwrites the mutable fields of the row. StoreID is never
	// touched; the stored document number is updated as a display copy only.
	Update(ctx context.Context, docType document.Type, id int64, rec *DocumentRecord) error

	// Delete removes the row unconditionally. Deleting a converted quote
	// does not retract the conversion.
	Delete(ctx context.Context, docType document.Type, id int64) error

	// LastNumberForPeriod returns the document number with the highest
	// numeric sequence prefix for (storeID, docType, period suffix), or ""
	// when the period has no documents yet.
	LastNumberForPeriod(ctx context.Context, docType document.Type, storeID int64, periodSuffix string) (string, error)
}

// StoreRecord represents a store as stored in persistence.
type StoreRecord struct {
	ID                 int64
	OwnerUserID        int64
	Name               string
	LogoURL            string
	SignatureURL       string
	StampURL           string
	DocumentTemplateID int64
	CustomTexts        string // JSON: header/footer text
	Status             string // active | archived
}

// Store status values.
const (
	StoreStatusActive   = "active"
	StoreStatusArchived = "archived"
)

// StoreRepository is the secondary port for store persistence.
type StoreRepository interface {
	Create(ctx context.Context, rec *StoreRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*StoreRecord, error)

	// ListForUser returns the user's stores, archived ones excluded.
	ListForUser(ctx context.Context, ownerUserID int64) ([]*StoreRecord, error)

	// ListActive returns all non-archived stores.
	ListActive(ctx context.Context) ([]*StoreRecord, error)

	Update(ctx context.Context, id int64, rec *StoreRecord) error

	// Archive soft-deletes the store. The row and its documents remain
	// addressable by id.
	Archive(ctx context.Context, id int64) error
}

// TemplateRecord represents a document template as stored in persistence.
type TemplateRecord struct {
	ID          int64
	Name        string
	HTMLContent string
}

// TemplateRepository is the secondary port for document templates.
type TemplateRepository interface {
	Create(ctx context.Context, rec *TemplateRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*TemplateRecord, error)
	List(ctx context.Context) ([]*TemplateRecord, error)
	Update(ctx context.Context, id int64, rec *TemplateRecord) error
	Delete(ctx context.Context, id int64) error
}

// UserRecord represents an application user.
type UserRecord struct {
	ID       int64
	Username string
	Password string
}

// UserRepository is the secondary port for user persistence.
type UserRepository interface {
	Create(ctx context.Context, rec *UserRecord) (int64, error)
	GetByUsername(ctx context.Context, username string) (*UserRecord, error)
}

// SettingsRecord represents company settings attached to a store.
type SettingsRecord struct {
	ID           int64
	StoreID      int64
	CompanyName  string
	Logo         string
	ManagerName  string
	Signature    string
	Stamp        string
	Description  string
	Informations string
}

// SettingsRepository is the secondary port for settings persistence.
type SettingsRepository interface {
	// Save upserts the settings row for rec.StoreID.
	Save(ctx context.Context, rec *SettingsRecord) error

	// GetForStore retrieves the store's settings. Misses return ErrNotFound.
	GetForStore(ctx context.Context, storeID int64) (*SettingsRecord, error)

	// Clear removes the store's settings row.
	Clear(ctx context.Context, storeID int64) error
}

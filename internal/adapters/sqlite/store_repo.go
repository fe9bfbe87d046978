package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/factogo/internal/ports/secondary"
)

// StoreRepository implements secondary.StoreRepository with SQLite.
type StoreRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new SQLite store repository.
func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create persists a new store.
func (r *StoreRepository) Create(ctx context.Context, rec *secondary.StoreRecord) (int64, error) {
	if rec.Status == "" {
		rec.Status = secondary.StoreStatusActive
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stores (ownerUserId, name, logoUrl, signatureUrl, stampUrl, documentTemplateId, customTexts, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.OwnerUserID, rec.Name, nullString(rec.LogoURL), nullString(rec.SignatureURL), nullString(rec.StampURL),
		nullInt64(rec.DocumentTemplateID), nullString(rec.CustomTexts), rec.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create store: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read store id: %w", err)
	}
	return id, nil
}

const storeColumns = "storeId, ownerUserId, name, logoUrl, signatureUrl, stampUrl, documentTemplateId, customTexts, status"

// GetByID retrieves a store by id. Archived stores remain addressable here.
func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*secondary.StoreRecord, error) {
	rec, err := scanStore(r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE storeId = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store %d: %w", id, err)
	}
	return rec, nil
}

// ListForUser returns the user's stores, excluding archived ones.
func (r *StoreRepository) ListForUser(ctx context.Context, ownerUserID int64) ([]*secondary.StoreRecord, error) {
	return r.list(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE ownerUserId = ? AND status != ? ORDER BY storeId`,
		ownerUserID, secondary.StoreStatusArchived)
}

// ListActive returns all non-archived stores.
func (r *StoreRepository) ListActive(ctx context.Context) ([]*secondary.StoreRecord, error) {
	return r.list(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE status != ? ORDER BY storeId`,
		secondary.StoreStatusArchived)
}

func (r *StoreRepository) list(ctx context.Context, query string, args ...any) ([]*secondary.StoreRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []*secondary.StoreRecord
	for rows.Next() {
		rec, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// Update overwrites the store's editable fields. Ownership and status are
// untouched; archiving goes through Archive.
func (r *StoreRepository) Update(ctx context.Context, id int64, rec *secondary.StoreRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stores SET name = ?, logoUrl = ?, signatureUrl = ?, stampUrl = ?, documentTemplateId = ?, customTexts = ? WHERE storeId = ?`,
		rec.Name, nullString(rec.LogoURL), nullString(rec.SignatureURL), nullString(rec.StampURL),
		nullInt64(rec.DocumentTemplateID), nullString(rec.CustomTexts), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update store %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("store %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Archive soft-deletes the store. The row stays, so its documents and
// historical numbering remain intact.
func (r *StoreRepository) Archive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stores SET status = ? WHERE storeId = ?`,
		secondary.StoreStatusArchived, id,
	)
	if err != nil {
		return fmt.Errorf("failed to archive store %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("store %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}

func scanStore(row scanner) (*secondary.StoreRecord, error) {
	var (
		rec        secondary.StoreRecord
		owner      sql.NullInt64
		logo       sql.NullString
		signature  sql.NullString
		stamp      sql.NullString
		templateID sql.NullInt64
		texts      sql.NullString
	)
	if err := row.Scan(&rec.ID, &owner, &rec.Name, &logo, &signature, &stamp, &templateID, &texts, &rec.Status); err != nil {
		return nil, err
	}
	rec.OwnerUserID = owner.Int64
	rec.LogoURL = logo.String
	rec.SignatureURL = signature.String
	rec.StampURL = stamp.String
	rec.DocumentTemplateID = templateID.Int64
	rec.CustomTexts = texts.String
	return &rec, nil
}

func nullInt64(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

// Ensure StoreRepository implements the interface
var _ secondary.StoreRepository = (*StoreRepository)(nil)

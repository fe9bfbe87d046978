package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/factogo/internal/ports/secondary"
)

// SettingsRepository implements secondary.SettingsRepository with SQLite.
// Settings are one row per store, upserted in place.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Save upserts the settings row for rec.StoreID.
func (r *SettingsRepository) Save(ctx context.Context, rec *secondary.SettingsRecord) error {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM settings WHERE storeId = ?`, rec.StoreID).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO settings (storeId, companyName, logo, managerName, signature, stamp, description, informations)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.StoreID, nullString(rec.CompanyName), nullString(rec.Logo), nullString(rec.ManagerName),
			nullString(rec.Signature), nullString(rec.Stamp), nullString(rec.Description), nullString(rec.Informations),
		)
	case err == nil:
		_, err = r.db.ExecContext(ctx,
			`UPDATE settings SET companyName = ?, logo = ?, managerName = ?, signature = ?, stamp = ?, description = ?, informations = ? WHERE id = ?`,
			nullString(rec.CompanyName), nullString(rec.Logo), nullString(rec.ManagerName),
			nullString(rec.Signature), nullString(rec.Stamp), nullString(rec.Description), nullString(rec.Informations), id,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to save settings for store %d: %w", rec.StoreID, err)
	}
	return nil
}

// GetForStore retrieves the store's settings.
func (r *SettingsRepository) GetForStore(ctx context.Context, storeID int64) (*secondary.SettingsRecord, error) {
	var (
		rec     secondary.SettingsRecord
		company sql.NullString
		logo    sql.NullString
		manager sql.NullString
		sig     sql.NullString
		stamp   sql.NullString
		desc    sql.NullString
		info    sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, storeId, companyName, logo, managerName, signature, stamp, description, informations
		 FROM settings WHERE storeId = ?`, storeID,
	).Scan(&rec.ID, &rec.StoreID, &company, &logo, &manager, &sig, &stamp, &desc, &info)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("settings for store %d: %w", storeID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for store %d: %w", storeID, err)
	}

	rec.CompanyName = company.String
	rec.Logo = logo.String
	rec.ManagerName = manager.String
	rec.Signature = sig.String
	rec.Stamp = stamp.String
	rec.Description = desc.String
	rec.Informations = info.String
	return &rec, nil
}

// Clear removes the store's settings row.
func (r *SettingsRepository) Clear(ctx context.Context, storeID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE storeId = ?`, storeID); err != nil {
		return fmt.Errorf("failed to clear settings for store %d: %w", storeID, err)
	}
	return nil
}

// Ensure SettingsRepository implements the interface
var _ secondary.SettingsRepository = (*SettingsRepository)(nil)

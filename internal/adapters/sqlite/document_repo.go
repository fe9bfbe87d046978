// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/secondary"
)

// DocumentRepository implements secondary.DocumentRepository with SQLite.
// Each document type maps to its own physical table; the mapping is the
// exhaustive switch in document.Type.Table, so every query validates the
// type before interpolating the table name.
type DocumentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new SQLite document repository.
func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func tableFor(docType document.Type) (string, error) {
	if !docType.Valid() {
		return "", fmt.Errorf("invalid document type: %v", docType)
	}
	return docType.Table(), nil
}

// Create inserts a new document scoped to rec.StoreID.
func (r *DocumentRepository) Create(ctx context.Context, docType document.Type, rec *secondary.DocumentRecord) (int64, error) {
	table, err := tableFor(docType)
	if err != nil {
		return 0, err
	}

	query, args := insertStatement(table, docType, rec)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", docType, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s id: %w", docType, err)
	}
	return id, nil
}

// CreateConverted inserts a document derived from a quote and marks the
// quote Converted, atomically. Any failure rolls both changes back: a quote
// is never marked Converted without the derived document existing, and vice
// versa.
func (r *DocumentRepository) CreateConverted(ctx context.Context, docType document.Type, rec *secondary.DocumentRecord, convertedFromID int64) (int64, error) {
	table, err := tableFor(docType)
	if err != nil {
		return 0, err
	}
	if docType == document.Quote {
		return 0, fmt.Errorf("cannot convert a quote into a quote")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin conversion transaction: %w", err)
	}
	defer tx.Rollback()

	query, args := insertStatement(table, docType, rec)
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s from quote %d: %w", docType, convertedFromID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s id: %w", docType, err)
	}

	upd, err := tx.ExecContext(ctx,
		`UPDATE quotes SET status = ? WHERE id = ?`,
		document.StatusConverted, convertedFromID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark quote %d converted: %w", convertedFromID, err)
	}
	if affected, _ := upd.RowsAffected(); affected == 0 {
		return 0, fmt.Errorf("quote %d: %w", convertedFromID, secondary.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit conversion: %w", err)
	}
	return id, nil
}

// insertStatement builds the per-type INSERT. Delivery notes carry
// order_reference/payment_method; invoices and quotes carry the discount
// and status columns.
func insertStatement(table string, docType document.Type, rec *secondary.DocumentRecord) (string, []any) {
	if docType == document.DeliveryNote {
		query := fmt.Sprintf(
			`INSERT INTO %s (document_number, clientName, date, items, total, storeId, order_reference, payment_method)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, table)
		return query, []any{
			rec.DocumentNumber, rec.ClientName, rec.Date, rec.Items, rec.Total, rec.StoreID,
			nullString(rec.OrderReference), nullString(rec.PaymentMethod),
		}
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (document_number, clientName, date, items, total, storeId, discountType, discountValue, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, table)
	return query, []any{
		rec.DocumentNumber, rec.ClientName, rec.Date, rec.Items, rec.Total, rec.StoreID,
		nullString(rec.DiscountType), discountValueArg(rec), nullString(rec.Status),
	}
}

// GetByID retrieves a document by row id.
func (r *DocumentRepository) GetByID(ctx context.Context, docType document.Type, id int64) (*secondary.DocumentRecord, error) {
	table, err := tableFor(docType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, selectColumns(docType), table)
	rec, err := scanDocument(docType, r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", docType, id, err)
	}
	return rec, nil
}

// ListForStore returns all of the store's documents, newest row id first.
func (r *DocumentRepository) ListForStore(ctx context.Context, docType document.Type, storeID int64) ([]*secondary.DocumentRecord, error) {
	table, err := tableFor(docType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE storeId = ? ORDER BY id DESC`, selectColumns(docType), table)
	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", docType, err)
	}
	defer rows.Close()

	var records []*secondary.DocumentRecord
	for rows.Next() {
		rec, err := scanDocument(docType, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", docType, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", docType, err)
	}
	return records, nil
}

// Update overwrites the mutable fields of the row. StoreID is deliberately
// absent from the SET list; the stored document number is a display copy.
func (r *DocumentRepository) Update(ctx context.Context, docType document.Type, id int64, rec *secondary.DocumentRecord) error {
	table, err := tableFor(docType)
	if err != nil {
		return err
	}

	var (
		query string
		args  []any
	)
	if docType == document.DeliveryNote {
		query = fmt.Sprintf(
			`UPDATE %s SET document_number = ?, clientName = ?, date = ?, items = ?, total = ?, order_reference = ?, payment_method = ? WHERE id = ?`, table)
		args = []any{
			rec.DocumentNumber, rec.ClientName, rec.Date, rec.Items, rec.Total,
			nullString(rec.OrderReference), nullString(rec.PaymentMethod), id,
		}
	} else {
		query = fmt.Sprintf(
			`UPDATE %s SET document_number = ?, clientName = ?, date = ?, items = ?, total = ?, discountType = ?, discountValue = ?, status = ? WHERE id = ?`, table)
		args = []any{
			rec.DocumentNumber, rec.ClientName, rec.Date, rec.Items, rec.Total,
			nullString(rec.DiscountType), discountValueArg(rec), nullString(rec.Status), id,
		}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", docType, id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
	}
	return nil
}

// Delete hard-deletes the row. No cascade: deleting a converted quote does
// not retract the conversion or remove the derived document.
func (r *DocumentRepository) Delete(ctx context.Context, docType document.Type, id int64) error {
	table, err := tableFor(docType)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", docType, id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("%s %d: %w", docType, id, secondary.ErrNotFound)
	}
	return nil
}

// LastNumberForPeriod finds the highest-sequence document number for the
// store and period. Ordering casts the numeric prefix up to the first '/',
// so sequences past the three-digit display width still sort correctly.
//
// The read is not isolated from concurrent callers: two simultaneous
// requests can observe the same maximum. Acceptable for a single-process,
// single-user application.
func (r *DocumentRepository) LastNumberForPeriod(ctx context.Context, docType document.Type, storeID int64, periodSuffix string) (string, error) {
	table, err := tableFor(docType)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf(
		`SELECT document_number FROM %s
		 WHERE storeId = ? AND document_number LIKE ?
		 ORDER BY CAST(substr(document_number, 1, instr(document_number, '/') - 1) AS INTEGER) DESC
		 LIMIT 1`, table)

	var number string
	err = r.db.QueryRowContext(ctx, query, storeID, "%"+periodSuffix).Scan(&number)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last %s number: %w", docType, err)
	}
	return number, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func selectColumns(docType document.Type) string {
	if docType == document.DeliveryNote {
		return "id, document_number, clientName, date, items, total, storeId, order_reference, payment_method"
	}
	return "id, document_number, clientName, date, items, total, storeId, discountType, discountValue, status"
}

func scanDocument(docType document.Type, row scanner) (*secondary.DocumentRecord, error) {
	var (
		rec      secondary.DocumentRecord
		number   sql.NullString
		storeID  sql.NullInt64
		discType sql.NullString
		discVal  sql.NullFloat64
		status   sql.NullString
		orderRef sql.NullString
		payment  sql.NullString
	)

	var err error
	if docType == document.DeliveryNote {
		err = row.Scan(&rec.ID, &number, &rec.ClientName, &rec.Date, &rec.Items, &rec.Total, &storeID, &orderRef, &payment)
	} else {
		err = row.Scan(&rec.ID, &number, &rec.ClientName, &rec.Date, &rec.Items, &rec.Total, &storeID, &discType, &discVal, &status)
	}
	if err != nil {
		return nil, err
	}

	rec.DocumentNumber = number.String
	rec.StoreID = storeID.Int64
	rec.DiscountType = discType.String
	rec.DiscountValue = discVal.Float64
	rec.Status = status.String
	rec.OrderReference = orderRef.String
	rec.PaymentMethod = payment.String
	return &rec, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// discountValueArg stores NULL when no discount type is set, mirroring rows
// written before the discount columns existed.
func discountValueArg(rec *secondary.DocumentRecord) sql.NullFloat64 {
	if rec.DiscountType == "" {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: rec.DiscountValue, Valid: true}
}

// Ensure DocumentRepository implements the interface
var _ secondary.DocumentRepository = (*DocumentRepository)(nil)

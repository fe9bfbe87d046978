package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/factogo/internal/ports/secondary"
)

// TemplateRepository implements secondary.TemplateRepository with SQLite.
type TemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new SQLite template repository.
func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create persists a new document template.
func (r *TemplateRepository) Create(ctx context.Context, rec *secondary.TemplateRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO document_templates (name, htmlContent) VALUES (?, ?)`,
		rec.Name, rec.HTMLContent,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create template: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read template id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a template by id.
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*secondary.TemplateRecord, error) {
	var (
		rec  secondary.TemplateRecord
		html sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT templateId, name, htmlContent FROM document_templates WHERE templateId = ?`, id,
	).Scan(&rec.ID, &rec.Name, &html)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template %d: %w", id, err)
	}
	rec.HTMLContent = html.String
	return &rec, nil
}

// List returns all templates ordered by id.
func (r *TemplateRepository) List(ctx context.Context) ([]*secondary.TemplateRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT templateId, name, htmlContent FROM document_templates ORDER BY templateId`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*secondary.TemplateRecord
	for rows.Next() {
		var (
			rec  secondary.TemplateRecord
			html sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &html); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		rec.HTMLContent = html.String
		templates = append(templates, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Update overwrites the template's name and content.
func (r *TemplateRepository) Update(ctx context.Context, id int64, rec *secondary.TemplateRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE document_templates SET name = ?, htmlContent = ? WHERE templateId = ?`,
		rec.Name, rec.HTMLContent, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update template %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("template %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes the template.
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM document_templates WHERE templateId = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("template %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Ensure TemplateRepository implements the interface
var _ secondary.TemplateRepository = (*TemplateRepository)(nil)

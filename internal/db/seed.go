package db

import (
	"database/sql"
	"fmt"
)

// defaultTemplates are the document templates available on a fresh install.
// IDs are pinned so stores created before the user edits anything can
// reference them predictably.
var defaultTemplates = []struct {
	ID          int
	Name        string
	HTMLContent string
}{
	{1, "Classic", "Default classic template structure"},
	{2, "Modern", "Sleek modern template structure"},
	{3, "Commercial", "Commercial-style template"},
}

// SeedDefaultTemplates inserts the default document templates if the table
// is currently empty. Guarded by existence checks rather than uniqueness
// constraints, so re-running it (every open does) is a no-op.
func SeedDefaultTemplates(database *sql.DB) error {
	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM document_templates`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count document templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range defaultTemplates {
		_, err := database.Exec(
			`INSERT INTO document_templates (templateId, name, htmlContent)
			 SELECT ?, ?, ?
			 WHERE NOT EXISTS (SELECT 1 FROM document_templates WHERE templateId = ?)`,
			t.ID, t.Name, t.HTMLContent, t.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed template %q: %w", t.Name, err)
		}
	}

	return nil
}

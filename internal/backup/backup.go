// Package backup exports and restores the SQLite database file. A backup is
// a plain copy of the database; restoring overwrites the live file, so the
// database connection must be closed first.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Service copies the database file to and from the backup directory.
type Service struct {
	dbPath    string
	backupDir string
}

// NewService creates a backup service for the database at dbPath, writing
// exports into backupDir.
func NewService(dbPath, backupDir string) *Service {
	return &Service{dbPath: dbPath, backupDir: backupDir}
}

// Export copies the database into the backup directory under a unique name
// and returns the path of the backup file.
func (s *Service) Export() (string, error) {
	if _, err := os.Stat(s.dbPath); err != nil {
		return "", fmt.Errorf("database file: %w", err)
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure backup dir: %w", err)
	}

	dest := filepath.Join(s.backupDir, fmt.Sprintf("factogo-%s.db", uuid.NewString()))
	if err := copyFile(s.dbPath, dest); err != nil {
		return "", fmt.Errorf("export backup: %w", err)
	}
	return dest, nil
}

// Restore overwrites the database file with the backup at src. The caller
// must ensure no open connection is using the database.
func (s *Service) Restore(src string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("backup file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
		return fmt.Errorf("ensure database dir: %w", err)
	}
	if err := copyFile(src, s.dbPath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

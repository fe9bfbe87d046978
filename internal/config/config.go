// Package config loads the factogo configuration with Viper. Everything
// lives under a single application directory (~/.factogo by default): the
// config.yaml, the SQLite database, and exported backups.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDatabasePath = "database_path"
	cfgKeyBackupDir    = "backup_dir"
	cfgKeyOwnerUserID  = "owner_user_id"

	databaseFileName = "factogo.db"
	backupDirName    = "backups"
)

// defaultConfigYAML is written to config.yaml on first run so users have
// something to edit.
const defaultConfigYAML = `# factogo configuration

# Path to the SQLite database (optional; defaults to factogo.db next to
# this file).
# database_path:

# Directory where backups are exported (optional; defaults to the backups/
# subdirectory next to this file).
# backup_dir:

# Default owner user id for store commands.
owner_user_id: 1
`

// Config holds the resolved application configuration.
type Config struct {
	// Dir is the application directory the config was loaded from.
	Dir string

	// DatabasePath is the location of the SQLite database file.
	DatabasePath string

	// BackupDir is where database backups are exported.
	BackupDir string

	// OwnerUserID is the default user id for store operations.
	OwnerUserID int64
}

// DefaultDir returns the default application directory, ~/.factogo.
// The FACTOGO_HOME environment variable overrides it.
func DefaultDir() (string, error) {
	if dir := os.Getenv("FACTOGO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".factogo"), nil
}

// Load reads config.yaml from dir using Viper, creating the directory and
// a default config file on first run. A missing config.yaml is not an
// error; defaults apply.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDatabasePath, filepath.Join(dir, databaseFileName))
	v.SetDefault(cfgKeyBackupDir, filepath.Join(dir, backupDirName))
	v.SetDefault(cfgKeyOwnerUserID, 1)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Dir:          dir,
		DatabasePath: v.GetString(cfgKeyDatabasePath),
		BackupDir:    v.GetString(cfgKeyBackupDir),
		OwnerUserID:  v.GetInt64(cfgKeyOwnerUserID),
	}
	return cfg, nil
}

func ensureDefaultConfigFile(dir string) error {
	path := filepath.Join(dir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

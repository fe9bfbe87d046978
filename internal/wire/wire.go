// Package wire provides dependency injection for the factogo application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/example/factogo/internal/adapters/sqlite"
	"github.com/example/factogo/internal/app"
	"github.com/example/factogo/internal/backup"
	"github.com/example/factogo/internal/config"
	"github.com/example/factogo/internal/db"
	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
)

var (
	cfg             *config.Config
	manager         *db.Manager
	documentService primary.DocumentService
	storeService    primary.StoreService
	templateService primary.TemplateService
	userRepo        secondary.UserRepository
	settingsRepo    secondary.SettingsRepository

	cfgOnce sync.Once
	once    sync.Once
)

// Config returns the loaded application configuration. It does not open
// the database, so commands like backup restore can use it safely.
func Config() *config.Config {
	cfgOnce.Do(initConfig)
	return cfg
}

// Manager returns the singleton database manager.
func Manager() *db.Manager {
	once.Do(initServices)
	return manager
}

// DocumentService returns the singleton DocumentService instance.
func DocumentService() primary.DocumentService {
	once.Do(initServices)
	return documentService
}

// StoreService returns the singleton StoreService instance.
func StoreService() primary.StoreService {
	once.Do(initServices)
	return storeService
}

// TemplateService returns the singleton TemplateService instance.
func TemplateService() primary.TemplateService {
	once.Do(initServices)
	return templateService
}

// UserRepository returns the singleton user repository.
func UserRepository() secondary.UserRepository {
	once.Do(initServices)
	return userRepo
}

// SettingsRepository returns the singleton settings repository.
func SettingsRepository() secondary.SettingsRepository {
	once.Do(initServices)
	return settingsRepo
}

// BackupService returns a backup service for the configured database.
// It works on the file level and never opens the database itself.
func BackupService() *backup.Service {
	c := Config()
	return backup.NewService(c.DatabasePath, c.BackupDir)
}

func initConfig() {
	dir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to resolve config directory: %v", err)
	}
	cfg, err = config.Load(dir)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	manager = db.NewManager(c.DatabasePath)
	database, err := manager.Get(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) with the injected DB
	docRepo := sqlite.NewDocumentRepository(database)
	storeRepo := sqlite.NewStoreRepository(database)
	templateRepo := sqlite.NewTemplateRepository(database)
	userRepo = sqlite.NewUserRepository(database)
	settingsRepo = sqlite.NewSettingsRepository(database)

	// Create services (primary ports implementation)
	documentService = app.NewDocumentService(docRepo)
	storeService = app.NewStoreService(storeRepo)
	templateService = app.NewTemplateService(templateRepo)
}

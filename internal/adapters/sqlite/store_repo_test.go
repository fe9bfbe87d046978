package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/factogo/internal/adapters/sqlite"
	"github.com/example/factogo/internal/core/document"
	"github.com/example/factogo/internal/ports/secondary"
)

func TestStoreRepositoryCreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewStoreRepository(database)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.StoreRecord{
		OwnerUserID:        1,
		Name:               "Main Street",
		LogoURL:            "/img/logo.png",
		DocumentTemplateID: 2,
		CustomTexts:        `{"header":"Bienvenue","footer":"Merci"}`,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Main Street" {
		t.Errorf("Name = %q, want Main Street", got.Name)
	}
	if got.Status != secondary.StoreStatusActive {
		t.Errorf("Status = %q, want active (default)", got.Status)
	}
	if got.DocumentTemplateID != 2 {
		t.Errorf("DocumentTemplateID = %d, want 2", got.DocumentTemplateID)
	}
}

func TestStoreRepositoryArchiveIsSoft(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewStoreRepository(database)
	ctx := context.Background()

	active := seedStore(t, database, "Active Store", "active")
	archived := seedStore(t, database, "Old Store", "active")

	if err := repo.Archive(ctx, archived); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	// The archived row remains addressable by id.
	got, err := repo.GetByID(ctx, archived)
	if err != nil {
		t.Fatalf("archived store not addressable: %v", err)
	}
	if got.Status != secondary.StoreStatusArchived {
		t.Errorf("Status = %q, want archived", got.Status)
	}

	// Historical documents stay queryable.
	seedInvoice(t, database, archived, "001/03/2025")
	docRepo := sqlite.NewDocumentRepository(database)
	docs, err := docRepo.ListForStore(ctx, document.Invoice, archived)
	if err != nil {
		t.Fatalf("ListForStore for archived store failed: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("archived store documents = %d, want 1", len(docs))
	}

	// Active listings exclude it.
	stores, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(stores) != 1 || stores[0].ID != active {
		t.Errorf("ListActive = %v, want only store %d", storeIDs(stores), active)
	}

	stores, err = repo.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(stores) != 1 || stores[0].ID != active {
		t.Errorf("ListForUser = %v, want only store %d", storeIDs(stores), active)
	}
}

func TestStoreRepositoryUpdate(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewStoreRepository(database)
	ctx := context.Background()
	id := seedStore(t, database, "Before", "active")

	err := repo.Update(ctx, id, &secondary.StoreRecord{
		Name:               "After",
		SignatureURL:       "/img/sig.png",
		StampURL:           "/img/stamp.png",
		DocumentTemplateID: 3,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "After" || got.SignatureURL != "/img/sig.png" || got.StampURL != "/img/stamp.png" {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Status != secondary.StoreStatusActive {
		t.Errorf("Update touched status: %q", got.Status)
	}
}

func TestStoreRepositoryNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewStoreRepository(database)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetByID err = %v, want ErrNotFound", err)
	}
	if err := repo.Archive(ctx, 42); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("Archive err = %v, want ErrNotFound", err)
	}
}

func storeIDs(stores []*secondary.StoreRecord) []int64 {
	ids := make([]int64, len(stores))
	for i, s := range stores {
		ids[i] = s.ID
	}
	return ids
}

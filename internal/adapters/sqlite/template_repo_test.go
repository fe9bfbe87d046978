package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/factogo/internal/adapters/sqlite"
	"github.com/example/factogo/internal/ports/secondary"
)

func TestTemplateRepositoryCRUD(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTemplateRepository(database)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.TemplateRecord{
		Name:        "Minimal",
		HTMLContent: "<html><body>{{.ClientName}}</body></html>",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Minimal" {
		t.Errorf("Name = %q, want Minimal", got.Name)
	}

	if err := repo.Update(ctx, id, &secondary.TemplateRecord{Name: "Minimal v2", HTMLContent: "<html></html>"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err = repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after update failed: %v", err)
	}
	if got.Name != "Minimal v2" {
		t.Errorf("Name after update = %q, want Minimal v2", got.Name)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List returned %d templates, want 1", len(list))
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetByID after delete err = %v, want ErrNotFound", err)
	}
}

func TestUserRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &secondary.UserRecord{Username: "owner", Password: "hunter2"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "owner")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if got.Username != "owner" || got.Password != "hunter2" {
		t.Errorf("user = %+v", got)
	}

	if _, err := repo.Create(ctx, &secondary.UserRecord{Username: "owner", Password: "other"}); err == nil {
		t.Error("duplicate username should violate the unique constraint")
	}

	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetByUsername miss err = %v, want ErrNotFound", err)
	}
}

func TestSettingsRepositoryUpsert(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewSettingsRepository(database)
	ctx := context.Background()
	storeID := seedStore(t, database, "", "")

	if err := repo.Save(ctx, &secondary.SettingsRecord{StoreID: storeID, CompanyName: "ACME SARL"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, &secondary.SettingsRecord{StoreID: storeID, CompanyName: "ACME SA", ManagerName: "A. Manager"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := repo.GetForStore(ctx, storeID)
	if err != nil {
		t.Fatalf("GetForStore failed: %v", err)
	}
	if got.CompanyName != "ACME SA" || got.ManagerName != "A. Manager" {
		t.Errorf("settings = %+v", got)
	}
	if n := countRows(t, database, "settings"); n != 1 {
		t.Errorf("settings rows = %d, want 1 (upsert)", n)
	}

	if err := repo.Clear(ctx, storeID); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := repo.GetForStore(ctx, storeID); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetForStore after clear err = %v, want ErrNotFound", err)
	}
}

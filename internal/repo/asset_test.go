package repo

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/store"
)

func newAssetRepo(t *testing.T) (*AssetRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	return NewAssetRepo(store.New(path)), path
}

// writeAssets seeds the backing file directly, bypassing the repo.
func writeAssets(t *testing.T, path string, assets []models.Asset) {
	t.Helper()
	data, err := json.Marshal(assets)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestAssetRepo_SeedsOnFirstRun(t *testing.T) {
	repo, path := newAssetRepo(t)

	assets, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 seed assets, got %d", len(assets))
	}
	if assets[0].ID != 101 || assets[0].Name != "Arduino Uno R3" {
		t.Errorf("unexpected first seed asset: %+v", assets[0])
	}
	if assets[1].ID != 102 || assets[1].Status != models.StatusCheckedOut || assets[1].DueDate != "2023-12-31" {
		t.Errorf("unexpected second seed asset: %+v", assets[1])
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("seed catalog was not persisted: %v", err)
	}
}

func TestAssetRepo_Create_AssignsMaxPlusOne(t *testing.T) {
	repo, _ := newAssetRepo(t)

	// First run seeds 101 and 102.
	a, err := repo.Create(models.Asset{Name: "Oscilloscope", Status: models.StatusInStock, Quantity: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 103 {
		t.Errorf("expected ID 103, got %d", a.ID)
	}
	if a.DueDate != "" {
		t.Errorf("new asset must have empty due date, got %q", a.DueDate)
	}
}

func TestAssetRepo_Create_EmptyCatalogUsesSeedID(t *testing.T) {
	repo, path := newAssetRepo(t)
	writeAssets(t, path, []models.Asset{})

	a, err := repo.Create(models.Asset{Name: "Multimeter", Status: models.StatusInStock})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 101 {
		t.Errorf("expected seed ID 101 on empty catalog, got %d", a.ID)
	}
}

func TestAssetRepo_RoundTrip(t *testing.T) {
	repo, path := newAssetRepo(t)

	created, err := repo.Create(models.Asset{
		Name:     "Logic Analyzer",
		Category: "Instrument",
		Location: "Cabinet B-3",
		Status:   models.StatusInStock,
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Reload through a fresh repo over the same file.
	reloaded, err := NewAssetRepo(store.New(path)).GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID after reload: %v", err)
	}
	if reloaded != created {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", reloaded, created)
	}
}

func TestAssetRepo_UpdateStatus_DueDateLifecycle(t *testing.T) {
	repo, _ := newAssetRepo(t)

	a, err := repo.UpdateStatus(101, models.StatusCheckedOut, "2024-07-01")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if a.DueDate != "2024-07-01" {
		t.Errorf("expected due date stored verbatim, got %q", a.DueDate)
	}

	// Maintenance leaves the due date untouched.
	a, err = repo.UpdateStatus(101, models.StatusMaintenance, "")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if a.DueDate != "2024-07-01" {
		t.Errorf("maintenance must not touch the due date, got %q", a.DueDate)
	}

	// In Stock clears it, even when a due date is supplied.
	a, err = repo.UpdateStatus(101, models.StatusInStock, "2024-08-01")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if a.DueDate != "" {
		t.Errorf("in stock must clear the due date, got %q", a.DueDate)
	}

	// Idempotent: a second In Stock update neither errors nor resurrects it.
	a, err = repo.UpdateStatus(101, models.StatusInStock, "")
	if err != nil {
		t.Fatalf("UpdateStatus repeat: %v", err)
	}
	if a.DueDate != "" {
		t.Errorf("repeated in-stock update left due date %q", a.DueDate)
	}
}

func TestAssetRepo_UpdateStatus_NotFound(t *testing.T) {
	repo, _ := newAssetRepo(t)

	_, err := repo.UpdateStatus(999, models.StatusLost, "")
	if !errors.Is(err, apperrors.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestAssetRepo_Delete(t *testing.T) {
	repo, _ := newAssetRepo(t)

	if err := repo.DeleteByID(102); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := repo.GetByID(102); !errors.Is(err, apperrors.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound after delete, got %v", err)
	}
	if err := repo.DeleteByID(102); !errors.Is(err, apperrors.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound on second delete, got %v", err)
	}
}

func TestAssetRepo_Load_SanitizesLegacyDateTokens(t *testing.T) {
	repo, path := newAssetRepo(t)
	writeAssets(t, path, []models.Asset{
		{ID: 101, Name: "PSU", Status: models.StatusInStock, DueDate: "NaT"},
		{ID: 102, Name: "Scope", Status: models.StatusCheckedOut, DueDate: "nan"},
		{ID: 103, Name: "DMM", Status: models.StatusCheckedOut, DueDate: "2024-05-01"},
	})

	assets, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if assets[0].DueDate != "" || assets[1].DueDate != "" {
		t.Errorf("legacy tokens must normalize to empty, got %q and %q", assets[0].DueDate, assets[1].DueDate)
	}
	if assets[2].DueDate != "2024-05-01" {
		t.Errorf("real dates must pass through, got %q", assets[2].DueDate)
	}
}

func TestAssetRepo_Load_MissingDueDateField(t *testing.T) {
	repo, path := newAssetRepo(t)

	// Hand-written record without a due_date key at all.
	raw := `[{"id": 7, "name": "Soldering Iron", "category": "Tool", "location": "Bench 1", "status": "In Stock", "quantity": 4}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	assets, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(assets) != 1 || assets[0].DueDate != "" {
		t.Errorf("missing due_date must default to empty string, got %+v", assets)
	}
}

package repo

import (
	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/store"
)

// seedID is the first asset ID handed out on an empty catalog.
const seedID = 101

// ========================
// REPOSITORY STRUCT
// ========================

type AssetRepo struct {
	store *store.Store
}

func NewAssetRepo(s *store.Store) *AssetRepo {
	return &AssetRepo{store: s}
}

// Path returns the backing inventory file path.
func (r *AssetRepo) Path() string { return r.store.Path() }

// load reads the full catalog. A missing file seeds the demo records; due
// dates are sanitized so legacy markers never survive as fake dates.
func (r *AssetRepo) load() ([]models.Asset, error) {
	var assets []models.Asset
	ok, err := r.store.Load(&assets)
	if err != nil {
		return nil, err
	}
	if !ok {
		assets = seedAssets()
		if err := r.store.Save(assets); err != nil {
			return nil, err
		}
		return assets, nil
	}
	for i := range assets {
		assets[i].DueDate = store.SanitizeDate(assets[i].DueDate)
	}
	return assets, nil
}

// seedAssets is the demo catalog written on first run.
func seedAssets() []models.Asset {
	return []models.Asset{
		{
			ID:       seedID,
			Name:     "Arduino Uno R3",
			Category: "Dev Board",
			Location: "Cabinet A-1",
			Status:   models.StatusInStock,
			Quantity: 10,
		},
		{
			ID:       seedID + 1,
			Name:     "Raspberry Pi 4",
			Category: "Dev Board",
			Location: "Cabinet A-2",
			Status:   models.StatusCheckedOut,
			Quantity: 2,
			DueDate:  "2023-12-31",
		},
	}
}

// ========================
// LIST ALL ASSETS
// ========================

// List returns the catalog in stored (insertion) order.
func (r *AssetRepo) List() ([]models.Asset, error) {
	return r.load()
}

// ========================
// GET ASSET BY ID
// ========================

func (r *AssetRepo) GetByID(id int) (models.Asset, error) {
	assets, err := r.load()
	if err != nil {
		return models.Asset{}, err
	}
	for _, a := range assets {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Asset{}, apperrors.ErrAssetNotFound
}

// ========================
// CREATE ASSET
// ========================

// Create appends a new asset with ID max(existing)+1, or the seed ID on an
// empty catalog. DueDate always starts empty.
func (r *AssetRepo) Create(a models.Asset) (models.Asset, error) {
	assets, err := r.load()
	if err != nil {
		return models.Asset{}, err
	}

	maxID := 0
	for _, e := range assets {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	if maxID == 0 {
		a.ID = seedID
	} else {
		a.ID = maxID + 1
	}
	a.DueDate = ""

	assets = append(assets, a)
	if err := r.store.Save(assets); err != nil {
		return models.Asset{}, err
	}
	return a, nil
}

// ========================
// UPDATE ASSET STATUS
// ========================

// UpdateStatus sets the status of one asset. Checked Out stores dueDate
// verbatim; In Stock forces DueDate empty regardless of dueDate; other
// statuses leave DueDate untouched.
func (r *AssetRepo) UpdateStatus(id int, status, dueDate string) (models.Asset, error) {
	assets, err := r.load()
	if err != nil {
		return models.Asset{}, err
	}

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		assets[i].Status = status
		switch status {
		case models.StatusCheckedOut:
			assets[i].DueDate = dueDate
		case models.StatusInStock:
			assets[i].DueDate = ""
		}
		if err := r.store.Save(assets); err != nil {
			return models.Asset{}, err
		}
		return assets[i], nil
	}
	return models.Asset{}, apperrors.ErrAssetNotFound
}

// ========================
// DELETE ASSET BY ID
// ========================

// DeleteByID removes the record permanently. There is no tombstone.
func (r *AssetRepo) DeleteByID(id int) error {
	assets, err := r.load()
	if err != nil {
		return err
	}

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		assets = append(assets[:i], assets[i+1:]...)
		return r.store.Save(assets)
	}
	return apperrors.ErrAssetNotFound
}

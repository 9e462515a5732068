package repo

import (
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/store"
)

// AuditRepo persists audit log entries.
type AuditRepo struct {
	store *store.Store
}

// NewAuditRepo returns a new AuditRepo.
func NewAuditRepo(s *store.Store) *AuditRepo {
	return &AuditRepo{store: s}
}

// Log prepends one entry so the newest record is always first, then rewrites
// the whole file. Entries are never mutated or deleted.
func (r *AuditRepo) Log(e models.AuditEntry) error {
	var entries []models.AuditEntry
	if _, err := r.store.Load(&entries); err != nil {
		return err
	}
	entries = append([]models.AuditEntry{e}, entries...)
	return r.store.Save(entries)
}

// List returns entries newest first. limit <= 0 returns everything.
func (r *AuditRepo) List(limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if _, err := r.store.Load(&entries); err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

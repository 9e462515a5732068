package service

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/logger"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/repo"
)

// auditTimeLayout matches the lab's historical history_log format.
const auditTimeLayout = "2006-01-02 15:04:05"

// dateLayout is the only accepted due-date shape. ISO dates compare
// correctly as plain strings, which the overdue filter relies on.
const dateLayout = "2006-01-02"

// Inventory orchestrates status transitions, overdue detection, search, and
// audit emission. Every mutating method takes an explicit caller and fails
// with ErrForbidden unless the caller is an admin; the service does not
// trust the presentation layer's gate.
type Inventory struct {
	assets   *repo.AssetRepo
	audit    *repo.AuditRepo
	validate *validator.Validate
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewInventory(assets *repo.AssetRepo, audit *repo.AuditRepo) *Inventory {
	return &Inventory{
		assets:   assets,
		audit:    audit,
		validate: validator.New(),
		log:      logger.Get(),
		now:      time.Now,
	}
}

// CreateAssetInput is the validated input for a new asset. New assets start
// In Stock or in Maintenance; checkout happens through UpdateStatus.
type CreateAssetInput struct {
	Name     string `validate:"required,min=2,max=255"`
	Category string `validate:"max=100"`
	Location string `validate:"max=255"`
	Status   string `validate:"omitempty,oneof='In Stock' 'Maintenance'"`
	Quantity int    `validate:"gte=0"`
	Image    string `validate:"max=500"`
}

//
// ==========================
// Read operations (all roles)
// ==========================
//

func (s *Inventory) List() ([]models.Asset, error) {
	return s.assets.List()
}

func (s *Inventory) Get(id int) (models.Asset, error) {
	return s.assets.GetByID(id)
}

// Search matches case-insensitively on the name, or on a substring of the
// decimal ID. An empty term returns the full catalog.
func (s *Inventory) Search(term string) ([]models.Asset, error) {
	assets, err := s.assets.List()
	if err != nil || term == "" {
		return assets, err
	}

	needle := strings.ToLower(term)
	var out []models.Asset
	for _, a := range assets {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strconv.Itoa(a.ID), term) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Overdue returns checked-out assets whose due date is strictly before asOf
// (YYYY-MM-DD). Plain string comparison is correct because every stored due
// date is ISO formatted; assets with an empty due date never appear.
func (s *Inventory) Overdue(asOf string) ([]models.Asset, error) {
	assets, err := s.assets.List()
	if err != nil {
		return nil, err
	}

	var out []models.Asset
	for _, a := range assets {
		if a.Status == models.StatusCheckedOut && a.DueDate != "" && a.DueDate < asOf {
			out = append(out, a)
		}
	}
	return out, nil
}

// Stats summarizes the catalog for the dashboard view.
type Stats struct {
	Total      int
	CheckedOut int
	Overdue    int
	ByCategory map[string]int
}

func (s *Inventory) Stats(asOf string) (Stats, error) {
	assets, err := s.assets.List()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(assets), ByCategory: make(map[string]int)}
	for _, a := range assets {
		st.ByCategory[a.Category]++
		if a.Status != models.StatusCheckedOut {
			continue
		}
		st.CheckedOut++
		if a.DueDate != "" && a.DueDate < asOf {
			st.Overdue++
		}
	}
	return st, nil
}

// History returns audit entries newest first. limit <= 0 returns everything.
func (s *Inventory) History(limit int) ([]models.AuditEntry, error) {
	return s.audit.List(limit)
}

//
// ==========================
// Mutating operations (admin only)
// ==========================
//

// CreateAsset adds a new asset and records a CREATED audit entry.
func (s *Inventory) CreateAsset(caller models.Caller, in CreateAssetInput) (models.Asset, error) {
	if !caller.IsAdmin() {
		return models.Asset{}, apperrors.ErrForbidden
	}
	if err := s.validate.Struct(in); err != nil {
		return models.Asset{}, apperrors.Wrap(apperrors.ErrValidation, err)
	}

	status := in.Status
	if status == "" {
		status = models.StatusInStock
	}

	a, err := s.assets.Create(models.Asset{
		Name:     in.Name,
		Category: in.Category,
		Location: in.Location,
		Status:   status,
		Quantity: in.Quantity,
		Image:    in.Image,
	})
	if err != nil {
		return models.Asset{}, err
	}

	if err := s.record(a.Name, models.ActionCreated, "Added by "+caller.Username); err != nil {
		return models.Asset{}, err
	}
	s.log.Infow("asset created", "id", a.ID, "name", a.Name, "by", caller.Username)
	return a, nil
}

// UpdateStatus moves an asset through its lifecycle and records an UPDATE
// audit entry. Checked Out requires a YYYY-MM-DD due date; In Stock clears
// the due date; Maintenance and Lost leave it untouched.
func (s *Inventory) UpdateStatus(caller models.Caller, id int, status, dueDate string) (models.Asset, error) {
	if !caller.IsAdmin() {
		return models.Asset{}, apperrors.ErrForbidden
	}
	if !models.ValidStatus(status) {
		return models.Asset{}, apperrors.WithMessage(apperrors.ErrValidation, "unknown status: "+status)
	}
	if status == models.StatusCheckedOut {
		if dueDate == "" {
			return models.Asset{}, apperrors.WithMessage(apperrors.ErrValidation, "checked-out assets require a due date")
		}
		if _, err := time.Parse(dateLayout, dueDate); err != nil {
			return models.Asset{}, apperrors.WithMessage(apperrors.ErrValidation, "due date must be YYYY-MM-DD")
		}
	}

	a, err := s.assets.UpdateStatus(id, status, dueDate)
	if err != nil {
		return models.Asset{}, err
	}

	if err := s.record(a.Name, models.ActionUpdated, status+" by "+caller.Username); err != nil {
		return models.Asset{}, err
	}
	s.log.Infow("asset status updated", "id", a.ID, "status", status, "by", caller.Username)
	return a, nil
}

// DeleteAsset removes the record permanently and records a DELETED audit
// entry labeled with the ID, matching the historical log format.
func (s *Inventory) DeleteAsset(caller models.Caller, id int) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}

	if err := s.assets.DeleteByID(id); err != nil {
		return err
	}

	if err := s.record(strconv.Itoa(id), models.ActionDeleted, "Deleted by "+caller.Username); err != nil {
		return err
	}
	s.log.Infow("asset deleted", "id", id, "by", caller.Username)
	return nil
}

// Backup copies the inventory file to dest. Admin only. The catalog is
// loaded first so a fresh install backs up the seeded file, not nothing.
func (s *Inventory) Backup(caller models.Caller, dest string) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if _, err := s.assets.List(); err != nil {
		return err
	}

	in, err := os.Open(s.assets.Path())
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

// record appends one audit entry. The log is the system's only historical
// record, so persistence failures surface to the caller instead of being
// swallowed.
func (s *Inventory) record(label, action, detail string) error {
	entry := models.AuditEntry{
		Time:   s.now().Format(auditTimeLayout),
		Asset:  label,
		Action: action,
		Detail: detail,
	}
	if err := s.audit.Log(entry); err != nil {
		s.log.Errorw("audit append failed", "asset", label, "action", action, "error", err)
		return err
	}
	return nil
}

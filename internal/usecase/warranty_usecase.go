package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase/interfaces"
)

var (
	ErrWarrantyNotFound       = errors.New("warranty not found")
	ErrInvalidWarrantyID      = errors.New("invalid warranty id")
	ErrInvalidWarranty        = errors.New("invalid warranty payload")
	ErrInvalidWarrantyStatus  = errors.New("invalid warranty status")
	ErrInvalidCoverageMonths  = errors.New("invalid coverage duration")
	ErrInvalidRepair          = errors.New("invalid repair entry")
	ErrInvalidExpiryLookahead = errors.New("invalid expiry lookahead")
)

const defaultExpiryLookaheadDays = 30

// IWarrantyUseCase exposes the warranty operations consumed by the HTTP
// adapter and reporting collaborators.

type IWarrantyUseCase interface {
	Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	GetByID(ctx context.Context, id string) (entities.Warranty, error)
	GetByNumber(ctx context.Context, number string) (entities.Warranty, error)
	List(ctx context.Context) ([]entities.Warranty, error)
	ListByStatus(ctx context.Context, status entities.WarrantyStatus) ([]entities.Warranty, error)
	ListExpiring(ctx context.Context, days int) ([]entities.Warranty, error)
	Search(ctx context.Context, text string) ([]entities.Warranty, error)
	Update(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	UpdateStatus(ctx context.Context, id string, status entities.WarrantyStatus) error
	AddRepair(ctx context.Context, id string, r entities.Repair) (entities.Warranty, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (WarrantyStats, error)
}

// WarrantyStats is the dashboard summary for the warranty collection.
type WarrantyStats struct {
	Total    int64
	ByStatus map[entities.WarrantyStatus]int64
	ByBrand  map[string]int64
}

type WarrantyUseCase struct {
	repo    interfaces.IWarrantyRepository
	numbers interfaces.INumberGenerator
}

var _ IWarrantyUseCase = (*WarrantyUseCase)(nil)

func NewWarrantyUseCase(repo interfaces.IWarrantyRepository, numbers interfaces.INumberGenerator) *WarrantyUseCase {
	return &WarrantyUseCase{repo: repo, numbers: numbers}
}

// Create assigns the next warranty number, derives the coverage end date and
// persists the new record. Caller-supplied ID, Number and coverage end date
// are ignored.
func (u *WarrantyUseCase) Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	if strings.TrimSpace(w.Customer.Name) == "" {
		return entities.Warranty{}, ErrInvalidWarranty
	}
	if w.Coverage.DurationMonths <= 0 {
		return entities.Warranty{}, ErrInvalidCoverageMonths
	}
	if w.Coverage.Type != "" && !w.Coverage.Type.Valid() {
		return entities.Warranty{}, ErrInvalidWarranty
	}

	number, err := u.numbers.Next(ctx, time.Now().Year())
	if err != nil {
		return entities.Warranty{}, err
	}

	now := time.Now().UTC()
	w.ID = ""
	w.Number = number
	w.Coverage = entities.NewCoverage(w.Coverage.StartDate, w.Coverage.DurationMonths, w.Coverage.Type, w.Coverage.Items)
	w.CreatedAt = now
	w.UpdatedAt = now

	id, err := u.repo.Insert(ctx, w)
	if err != nil {
		return entities.Warranty{}, err
	}
	w.ID = id
	return w, nil
}

func (u *WarrantyUseCase) GetByID(ctx context.Context, id string) (entities.Warranty, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Warranty{}, ErrInvalidWarrantyID
	}

	w, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Warranty{}, err
	}
	if w.ID == "" {
		return entities.Warranty{}, ErrWarrantyNotFound
	}
	return w, nil
}

func (u *WarrantyUseCase) GetByNumber(ctx context.Context, number string) (entities.Warranty, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Warranty{}, ErrInvalidWarrantyID
	}

	w, err := u.repo.FindByNumber(ctx, number)
	if err != nil {
		return entities.Warranty{}, err
	}
	if w.ID == "" {
		return entities.Warranty{}, ErrWarrantyNotFound
	}
	return w, nil
}

func (u *WarrantyUseCase) List(ctx context.Context) ([]entities.Warranty, error) {
	return u.repo.FindAll(ctx)
}

func (u *WarrantyUseCase) ListByStatus(ctx context.Context, status entities.WarrantyStatus) ([]entities.Warranty, error) {
	if !status.Valid() {
		return nil, ErrInvalidWarrantyStatus
	}
	return u.repo.FindByStatus(ctx, status)
}

// ListExpiring lists ACTIVA warranties ending within the next days; a
// non-positive lookahead falls back to 30 days.
func (u *WarrantyUseCase) ListExpiring(ctx context.Context, days int) ([]entities.Warranty, error) {
	if days <= 0 {
		days = defaultExpiryLookaheadDays
	}
	return u.repo.FindExpiringWithin(ctx, days)
}

func (u *WarrantyUseCase) Search(ctx context.Context, text string) ([]entities.Warranty, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return u.repo.FindAll(ctx)
	}
	return u.repo.Search(ctx, text)
}

// Update persists a full replacement of the warranty. The coverage end date
// is re-derived from start + duration before the write; the assigned number
// is immutable and must already be present on the entity.
func (u *WarrantyUseCase) Update(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	if strings.TrimSpace(w.ID) == "" {
		return entities.Warranty{}, ErrInvalidWarrantyID
	}
	if w.Coverage.DurationMonths <= 0 {
		return entities.Warranty{}, ErrInvalidCoverageMonths
	}
	if w.Coverage.Status != "" && !w.Coverage.Status.Valid() {
		return entities.Warranty{}, ErrInvalidWarrantyStatus
	}

	w.Coverage.Recalculate()
	w.UpdatedAt = time.Now().UTC()

	ok, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Warranty{}, err
	}
	if !ok {
		return entities.Warranty{}, ErrWarrantyNotFound
	}
	return w, nil
}

func (u *WarrantyUseCase) UpdateStatus(ctx context.Context, id string, status entities.WarrantyStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWarrantyID
	}
	if !status.Valid() {
		return ErrInvalidWarrantyStatus
	}

	ok, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWarrantyNotFound
	}
	return nil
}

// AddRepair appends one entry to the repair history and persists the result
// as a full replace.
func (u *WarrantyUseCase) AddRepair(ctx context.Context, id string, r entities.Repair) (entities.Warranty, error) {
	if strings.TrimSpace(r.Description) == "" {
		return entities.Warranty{}, ErrInvalidRepair
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Warranty{}, err
	}

	w.AddRepair(r)

	ok, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Warranty{}, err
	}
	if !ok {
		return entities.Warranty{}, ErrWarrantyNotFound
	}
	return w, nil
}

func (u *WarrantyUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWarrantyID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWarrantyNotFound
	}
	return nil
}

func (u *WarrantyUseCase) Stats(ctx context.Context) (WarrantyStats, error) {
	total, err := u.repo.CountTotal(ctx)
	if err != nil {
		return WarrantyStats{}, err
	}
	byStatus, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return WarrantyStats{}, err
	}
	byBrand, err := u.repo.CountByBrand(ctx)
	if err != nil {
		return WarrantyStats{}, err
	}
	return WarrantyStats{Total: total, ByStatus: byStatus, ByBrand: byBrand}, nil
}

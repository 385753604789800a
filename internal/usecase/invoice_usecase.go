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
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoice       = errors.New("invalid invoice payload")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrInvalidRevenueYear   = errors.New("invalid revenue year")
)

// IInvoiceUseCase exposes the invoice operations consumed by the HTTP
// adapter and reporting collaborators.

type IInvoiceUseCase interface {
	Create(ctx context.Context, f entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByNumber(ctx context.Context, number string) (entities.Invoice, error)
	GetByWarrantyID(ctx context.Context, warrantyID string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	ListByIssueDateRange(ctx context.Context, from, to time.Time) ([]entities.Invoice, error)
	Search(ctx context.Context, text string) ([]entities.Invoice, error)
	Update(ctx context.Context, f entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (InvoiceStats, error)
	RevenueByMonth(ctx context.Context, year int) (map[int]float64, error)
}

// InvoiceStats is the dashboard summary for the invoice collection.
type InvoiceStats struct {
	Total          int64
	ByStatus       map[entities.InvoiceStatus]int64
	TotalsByStatus map[entities.InvoiceStatus]float64
	PaidTotal      float64
}

type InvoiceUseCase struct {
	repo    interfaces.IInvoiceRepository
	numbers interfaces.INumberGenerator
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, numbers interfaces.INumberGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, numbers: numbers}
}

// Create assigns the next invoice number, recomputes totals from the item
// list and persists the new record. Status defaults to PENDIENTE and the
// issue date to today when absent.
func (u *InvoiceUseCase) Create(ctx context.Context, f entities.Invoice) (entities.Invoice, error) {
	if strings.TrimSpace(f.Customer.Name) == "" {
		return entities.Invoice{}, ErrInvalidInvoice
	}
	for _, it := range f.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 || it.TaxRate < 0 {
			return entities.Invoice{}, ErrInvalidInvoice
		}
	}
	if f.Status == "" {
		f.Status = entities.InvoiceStatusPending
	}
	if !f.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	if f.PaymentMethod != "" && !f.PaymentMethod.Valid() {
		return entities.Invoice{}, ErrInvalidInvoice
	}
	if f.IssueDate.IsZero() {
		f.IssueDate = time.Now()
	}

	number, err := u.numbers.Next(ctx, time.Now().Year())
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	f.ID = ""
	f.Number = number
	f.CreatedAt = now
	f.RecalculateTotals()

	id, err := u.repo.Insert(ctx, f)
	if err != nil {
		return entities.Invoice{}, err
	}
	f.ID = id
	return f, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	f, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if f.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return f, nil
}

func (u *InvoiceUseCase) GetByNumber(ctx context.Context, number string) (entities.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	f, err := u.repo.FindByNumber(ctx, number)
	if err != nil {
		return entities.Invoice{}, err
	}
	if f.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return f, nil
}

func (u *InvoiceUseCase) GetByWarrantyID(ctx context.Context, warrantyID string) (entities.Invoice, error) {
	warrantyID = strings.TrimSpace(warrantyID)
	if warrantyID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	f, err := u.repo.FindByWarrantyID(ctx, warrantyID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if f.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return f, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.FindAll(ctx)
}

func (u *InvoiceUseCase) ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	if !status.Valid() {
		return nil, ErrInvalidInvoiceStatus
	}
	return u.repo.FindByStatus(ctx, status)
}

func (u *InvoiceUseCase) ListByIssueDateRange(ctx context.Context, from, to time.Time) ([]entities.Invoice, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.FindByIssueDateRange(ctx, from, to)
}

func (u *InvoiceUseCase) Search(ctx context.Context, text string) ([]entities.Invoice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return u.repo.FindAll(ctx)
	}
	return u.repo.Search(ctx, text)
}

// Update persists a full replacement of the invoice, recomputing totals
// first so persisted derived fields can never drift from the item list. An
// emptied item list is valid and zeroes the totals.
func (u *InvoiceUseCase) Update(ctx context.Context, f entities.Invoice) (entities.Invoice, error) {
	if strings.TrimSpace(f.ID) == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if f.Status != "" && !f.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	for _, it := range f.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 || it.TaxRate < 0 {
			return entities.Invoice{}, ErrInvalidInvoice
		}
	}

	f.RecalculateTotals()

	ok, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !ok {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return f, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvoiceNotFound
	}
	return nil
}

func (u *InvoiceUseCase) Stats(ctx context.Context) (InvoiceStats, error) {
	total, err := u.repo.CountTotal(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}
	byStatus, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}
	totals, err := u.repo.TotalsByStatus(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}
	paid, err := u.repo.SumPaidTotal(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}
	return InvoiceStats{Total: total, ByStatus: byStatus, TotalsByStatus: totals, PaidTotal: paid}, nil
}

func (u *InvoiceUseCase) RevenueByMonth(ctx context.Context, year int) (map[int]float64, error) {
	if year < 2000 || year > 2100 {
		return nil, ErrInvalidRevenueYear
	}
	return u.repo.RevenueByMonth(ctx, year)
}

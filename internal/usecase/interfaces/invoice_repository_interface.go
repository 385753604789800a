package interfaces

import (
	"context"
	"time"

	"garantias_service/internal/domain/entities"
)

// IInvoiceRepository abstracts document-store persistence for Invoice.
//
// Same conventions as IWarrantyRepository: zero entity + nil error for
// no-match lookups, booleans for no-document-affected writes.

type IInvoiceRepository interface {
	FindAll(ctx context.Context) ([]entities.Invoice, error)
	FindByID(ctx context.Context, id string) (entities.Invoice, error)
	FindByNumber(ctx context.Context, number string) (entities.Invoice, error)
	// FindByWarrantyID resolves the soft reference from a warranty back to
	// its originating invoice.
	FindByWarrantyID(ctx context.Context, warrantyID string) (entities.Invoice, error)
	FindByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	FindByIssueDateRange(ctx context.Context, from, to time.Time) ([]entities.Invoice, error)
	Search(ctx context.Context, text string) ([]entities.Invoice, error)

	Insert(ctx context.Context, f entities.Invoice) (string, error)
	Update(ctx context.Context, f entities.Invoice) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.InvoiceStatus]int64, error)
	TotalsByStatus(ctx context.Context) (map[entities.InvoiceStatus]float64, error)
	// SumPaidTotal sums the total of every PAGADA invoice.
	SumPaidTotal(ctx context.Context) (float64, error)
	// RevenueByMonth buckets PAGADA invoice totals by issue-date month for
	// the given year; the map always holds months 1..12.
	RevenueByMonth(ctx context.Context, year int) (map[int]float64, error)

	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

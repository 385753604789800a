package interfaces

import (
	"context"

	"garantias_service/internal/domain/entities"
)

// IWarrantyRepository abstracts document-store persistence for Warranty.
//
// Lookup methods return the zero entity with a nil error when nothing
// matches; Update/UpdateStatus/Delete report "no document affected" as
// false, never as an error. Store-communication failures surface as errors.

type IWarrantyRepository interface {
	FindAll(ctx context.Context) ([]entities.Warranty, error)
	FindByID(ctx context.Context, id string) (entities.Warranty, error)
	FindByNumber(ctx context.Context, number string) (entities.Warranty, error)
	FindByStatus(ctx context.Context, status entities.WarrantyStatus) ([]entities.Warranty, error)
	// FindExpiringWithin lists ACTIVA warranties whose end date falls in
	// [today, today+days], ascending by end date.
	FindExpiringWithin(ctx context.Context, days int) ([]entities.Warranty, error)
	Search(ctx context.Context, text string) ([]entities.Warranty, error)

	Insert(ctx context.Context, w entities.Warranty) (string, error)
	Update(ctx context.Context, w entities.Warranty) (bool, error)
	UpdateStatus(ctx context.Context, id string, status entities.WarrantyStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.WarrantyStatus]int64, error)
	CountByBrand(ctx context.Context) (map[string]int64, error)

	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

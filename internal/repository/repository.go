package repository

import (
	"context"
	"time"

	"item-catalog/internal/model"

	"github.com/shopspring/decimal"
)

// ItemRepository defines the interface for item data access operations.
// Absent rows are reported as nil results, never as errors.
type ItemRepository interface {
	// Create inserts an item together with its media and returns the stored row.
	Create(ctx context.Context, in ItemCreateInput) (*model.Item, error)

	// GetByID retrieves a single item with its media. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// Update applies the set fields of in. Returns nil when the item does not exist.
	Update(ctx context.Context, id int64, in ItemUpdateInput) (*model.Item, error)

	// Delete removes an item and its media. Reports false when nothing matched.
	Delete(ctx context.Context, id int64) (bool, error)

	// FindFiltered returns one page of items matching filter.
	FindFiltered(ctx context.Context, filter model.ItemFilter) (*model.Paginated[ItemListRow], error)
}

// ItemCreateInput is the persistence shape of a new item.
type ItemCreateInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  int64
	MediaURLs   []string
}

// ItemUpdateInput is a change set. Nil fields are not written.
type ItemUpdateInput struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Stock        *int
	CategoryID   *int64
	AddMediaURLs []string
}

// IsEmpty reports whether the change set would modify nothing.
func (in ItemUpdateInput) IsEmpty() bool {
	return len(in.toMap()) == 0 && len(in.AddMediaURLs) == 0
}

func (in ItemUpdateInput) toMap() map[string]any {
	m := make(map[string]any)
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Description != nil {
		m["description"] = *in.Description
	}
	if in.Price != nil {
		m["price"] = *in.Price
	}
	if in.Stock != nil {
		m["stock"] = *in.Stock
	}
	if in.CategoryID != nil {
		m["category_id"] = *in.CategoryID
	}
	return m
}

// ItemListRow is a row of a filtered item query.
type ItemListRow struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
	CategoryID   int64
	CategoryName string
	MediaURLs    []string
	CreatedAt    time.Time
}

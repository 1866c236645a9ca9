package service

import (
	"context"

	"item-catalog/internal/model"
)

// ItemService defines operations for catalogue item management.
// Every returned error is a *model.DomainError.
type ItemService interface {
	// CreateItem validates req and stores a new item with its image.
	CreateItem(ctx context.Context, req *model.ItemCreateRequest) (*model.Item, error)

	// GetItemByID retrieves a single item by ID.
	GetItemByID(ctx context.Context, id int64) (*model.Item, error)

	// UpdateItem applies the fields present in req to an existing item.
	UpdateItem(ctx context.Context, id int64, req *model.ItemUpdateRequest) (*model.Item, error)

	// FindFiltered returns one page of item summaries matching filter.
	FindFiltered(ctx context.Context, filter model.ItemFilter) (*model.Paginated[model.ItemSummary], error)

	// DeleteItem removes an item by ID.
	DeleteItem(ctx context.Context, id int64) error
}

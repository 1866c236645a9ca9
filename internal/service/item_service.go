package service

import (
	"context"
	"errors"

	"item-catalog/internal/model"
	"item-catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLSTATE codes the service maps to validation errors.
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// itemService implements ItemService.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

// NewItemService creates a new item service.
func NewItemService(itemRepo repository.ItemRepository, logger zerolog.Logger) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		logger:   logger.With().Str("service", "item").Logger(),
	}
}

// CreateItem validates req and stores a new item with its image.
func (s *itemService) CreateItem(ctx context.Context, req *model.ItemCreateRequest) (*model.Item, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Debug().Err(err).Msg("rejected item create")
		return nil, err
	}

	item, err := s.itemRepo.Create(ctx, toCreateInput(req))
	if err != nil {
		return nil, s.translateError(err, "failed to create item")
	}

	s.logger.Debug().Int64("item_id", item.ID).Msg("item created")

	return item, nil
}

// GetItemByID retrieves a single item by ID.
func (s *itemService) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateError(err, "failed to get item by ID")
	}

	if item == nil {
		s.logger.Debug().Int64("item_id", id).Msg("item not found")
		return nil, model.ErrItemNotFound
	}

	return item, nil
}

// UpdateItem applies the fields present in req. Zero values count as present.
func (s *itemService) UpdateItem(ctx context.Context, id int64, req *model.ItemUpdateRequest) (*model.Item, error) {
	if err := validateUpdate(req); err != nil {
		s.logger.Debug().Err(err).Int64("item_id", id).Msg("rejected item update")
		return nil, err
	}

	item, err := s.itemRepo.Update(ctx, id, toUpdateInput(req))
	if err != nil {
		return nil, s.translateError(err, "failed to update item")
	}

	if item == nil {
		s.logger.Debug().Int64("item_id", id).Msg("item not found for update")
		return nil, model.ErrItemNotFound
	}

	return item, nil
}

// FindFiltered returns one page of item summaries matching filter.
func (s *itemService) FindFiltered(ctx context.Context, filter model.ItemFilter) (*model.Paginated[model.ItemSummary], error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	filter = filter.Normalise()

	s.logger.Info().
		Int("page", filter.Page).
		Int("page_size", filter.PageSize).
		Str("sort_by", filter.SortBy).
		Str("sort_order", string(filter.SortOrder)).
		Str("name", filter.Name).
		Msg("find filtered")

	page, err := s.itemRepo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, s.translateError(err, "failed to find items")
	}

	return toSummaryPage(page), nil
}

// DeleteItem removes an item by ID.
func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return s.translateError(err, "failed to delete item")
	}

	if !deleted {
		s.logger.Debug().Int64("item_id", id).Msg("item not found for delete")
		return model.ErrItemNotFound
	}

	s.logger.Debug().Int64("item_id", id).Msg("item deleted")

	return nil
}

// translateError turns any failure into a *model.DomainError. Constraint
// violations become validation errors; anything unexpected is logged and
// reported as internal.
func (s *itemService) translateError(err error, msg string) *model.DomainError {
	if de, ok := model.AsDomainError(err); ok {
		return de
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			s.logger.Debug().Str("constraint", pgErr.ConstraintName).Msg("foreign key violation")
			return model.ErrCategoryNotFound.WithCause(err)
		case pgCheckViolation, pgNumericOutOfRange:
			s.logger.Debug().Str("code", pgErr.Code).Str("constraint", pgErr.ConstraintName).Msg("constraint violation")
			return model.ErrConstraintFailed.WithCause(err)
		}
	}

	s.logger.Error().Err(err).Msg(msg)
	return model.NewInternalError(err)
}

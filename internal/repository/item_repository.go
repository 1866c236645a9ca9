package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"item-catalog/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// itemSortColumns maps public sort fields to their SQL columns.
var itemSortColumns = map[string]string{
	"id":        "p.id",
	"name":      "p.name",
	"price":     "p.price",
	"stock":     "p.stock",
	"createdAt": "p.created_at",
}

var itemColumns = []string{"id", "name", "description", "price", "stock", "category_id", "created_at", "updated_at"}

// itemRepository implements the ItemRepository interface using PostgreSQL.
type itemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewItemRepository creates a new PostgreSQL-backed item repository.
func NewItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// Create inserts the product row, its media and the links between them in one transaction.
func (r *itemRepository) Create(ctx context.Context, in ItemCreateInput) (*model.Item, error) {
	var item *model.Item

	err := withTx(ctx, r.pool, r.logger, func(tx pgx.Tx) error {
		query, args, err := psql.Insert("products").
			Columns("name", "description", "price", "stock", "category_id").
			Values(in.Name, in.Description, in.Price, in.Stock, in.CategoryID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			r.logger.Error().Err(err).Int64("category_id", in.CategoryID).Msg("failed to insert item")
			return fmt.Errorf("failed to insert item: %w", err)
		}

		if err := r.attachMedia(ctx, tx, id, in.MediaURLs); err != nil {
			return err
		}

		item, err = r.getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Int64("item_id", item.ID).Msg("item created successfully")

	return item, nil
}

// GetByID retrieves a single item by its ID.
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	return r.getByID(ctx, r.pool, id)
}

func (r *itemRepository) getByID(ctx context.Context, q querier, id int64) (*model.Item, error) {
	query, args, err := psql.Select(itemColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var item model.Item
	err = q.QueryRow(ctx, query, args...).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Stock, &item.CategoryID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("item_id", id).Msg("item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to query item")
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	media, err := r.mediaFor(ctx, q, id)
	if err != nil {
		return nil, err
	}
	item.Media = media

	return &item, nil
}

func (r *itemRepository) mediaFor(ctx context.Context, q querier, itemID int64) ([]model.Media, error) {
	query, args, err := psql.Select("m.id", "m.url", "m.created_at").
		From("media m").
		Join("product_media pm ON pm.media_id = m.id").
		Where(sq.Eq{"pm.product_id": itemID}).
		OrderBy("m.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build media query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Int64("item_id", itemID).Msg("failed to query media")
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	media := []model.Media{}
	for rows.Next() {
		var m model.Media
		if err := rows.Scan(&m.ID, &m.URL, &m.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan media row")
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		media = append(media, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating media rows")
		return nil, fmt.Errorf("error iterating media: %w", err)
	}

	return media, nil
}

// attachMedia creates one media row per URL and links it to the item.
func (r *itemRepository) attachMedia(ctx context.Context, tx pgx.Tx, itemID int64, urls []string) error {
	for _, url := range urls {
		query, args, err := psql.Insert("media").
			Columns("url").
			Values(url).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build media insert: %w", err)
		}

		var mediaID int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&mediaID); err != nil {
			r.logger.Error().Err(err).Int64("item_id", itemID).Msg("failed to insert media")
			return fmt.Errorf("failed to insert media: %w", err)
		}

		query, args, err = psql.Insert("product_media").
			Columns("product_id", "media_id").
			Values(itemID, mediaID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build media link insert: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			r.logger.Error().Err(err).Int64("item_id", itemID).Int64("media_id", mediaID).Msg("failed to link media")
			return fmt.Errorf("failed to link media: %w", err)
		}
	}
	return nil
}

// Update writes only the columns present in the change set and bumps updated_at.
func (r *itemRepository) Update(ctx context.Context, id int64, in ItemUpdateInput) (*model.Item, error) {
	if in.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var item *model.Item

	err := withTx(ctx, r.pool, r.logger, func(tx pgx.Tx) error {
		query, args, err := psql.Update("products").
			SetMap(in.toMap()).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update query: %w", err)
		}

		var updatedID int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				r.logger.Debug().Int64("item_id", id).Msg("item not found for update")
				return nil
			}
			r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to update item")
			return fmt.Errorf("failed to update item: %w", err)
		}

		if err := r.attachMedia(ctx, tx, id, in.AddMediaURLs); err != nil {
			return err
		}

		item, err = r.getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes the item, its media links and the linked media rows.
func (r *itemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := withTx(ctx, r.pool, r.logger, func(tx pgx.Tx) error {
		query, args, err := psql.Delete("product_media").
			Where(sq.Eq{"product_id": id}).
			Suffix("RETURNING media_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build media unlink query: %w", err)
		}

		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to unlink media")
			return fmt.Errorf("failed to unlink media: %w", err)
		}
		mediaIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return fmt.Errorf("failed to collect media ids: %w", err)
		}

		query, args, err = psql.Delete("products").Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to delete item")
			return fmt.Errorf("failed to delete item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		deleted = true

		if len(mediaIDs) == 0 {
			return nil
		}

		query, args, err = psql.Delete("media").Where(sq.Eq{"id": mediaIDs}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build media delete query: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to delete media")
			return fmt.Errorf("failed to delete media: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// FindFiltered runs a count query and a page query over the same filter.
func (r *itemRepository) FindFiltered(ctx context.Context, filter model.ItemFilter) (*model.Paginated[ItemListRow], error) {
	filter = filter.Normalise()

	countQuery, countArgs, err := applyItemFilter(psql.Select("COUNT(*)").From("products p"), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to count items")
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	sortColumn, ok := itemSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "p.id"
	}
	orderBy := []string{sortColumn + " " + strings.ToUpper(string(filter.SortOrder))}
	if sortColumn != "p.id" {
		orderBy = append(orderBy, "p.id ASC")
	}

	pageBuilder := psql.Select(
		"p.id", "p.name", "p.description", "p.price", "p.stock", "p.category_id", "c.name",
		"COALESCE(array_agg(m.url ORDER BY m.id) FILTER (WHERE m.url IS NOT NULL), '{}')",
		"p.created_at",
	).
		From("products p").
		Join("categories c ON c.id = p.category_id").
		LeftJoin("product_media pm ON pm.product_id = p.id").
		LeftJoin("media m ON m.id = pm.media_id").
		GroupBy("p.id", "c.name").
		OrderBy(orderBy...).
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset()))

	query, args, err := applyItemFilter(pageBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Int("page", filter.Page).Int("page_size", filter.PageSize).Msg("failed to query items")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []ItemListRow
	for rows.Next() {
		var row ItemListRow
		err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Price, &row.Stock,
			&row.CategoryID, &row.CategoryName, &row.MediaURLs, &row.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan item row")
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating item rows")
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return model.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// applyItemFilter adds the WHERE clauses for the field filters of f.
func applyItemFilter(b sq.SelectBuilder, f model.ItemFilter) sq.SelectBuilder {
	if f.Name != "" {
		b = b.Where(sq.ILike{"p.name": "%" + escapeLike(f.Name) + "%"})
	}
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"p.category_id": *f.CategoryID})
	}
	if f.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"p.price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"p.price": *f.MaxPrice})
	}
	if f.InStock != nil {
		if *f.InStock {
			b = b.Where(sq.Gt{"p.stock": 0})
		} else {
			b = b.Where(sq.Eq{"p.stock": 0})
		}
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package integration

import (
	"context"
	"testing"

	"item-catalog/internal/model"
	"item-catalog/internal/repository"
	"item-catalog/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	svc := service.NewItemService(repository.NewItemRepository(testDB.Pool, logger), logger)
	ctx := context.Background()

	t.Run("Round trip keeps untouched fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		cats := SeedCategories(t, testDB.Pool, "Stationery", "Office")

		stock := 10
		price := decimal.RequireFromString("1.5")
		created, err := svc.CreateItem(ctx, &model.ItemCreateRequest{
			Name:        "Pen",
			Description: "Blue pen",
			Price:       &price,
			Stock:       &stock,
			CategoryID:  cats[0],
		})
		require.NoError(t, err)
		assert.Empty(t, created.Media)

		newCategory := cats[1]
		updated, err := svc.UpdateItem(ctx, created.ID, &model.ItemUpdateRequest{CategoryID: &newCategory})
		require.NoError(t, err)

		assert.Equal(t, cats[1], updated.CategoryID)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Description, updated.Description)
		assert.True(t, created.Price.Equal(updated.Price))
		assert.Equal(t, created.Stock, updated.Stock)
	})

	t.Run("Empty update returns current item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		cats := SeedCategories(t, testDB.Pool, "Stationery")
		price := decimal.NewFromInt(3)

		created, err := svc.CreateItem(ctx, &model.ItemCreateRequest{
			Name:       "Pad",
			Price:      &price,
			CategoryID: cats[0],
		})
		require.NoError(t, err)
		assert.Equal(t, 0, created.Stock)

		same, err := svc.UpdateItem(ctx, created.ID, &model.ItemUpdateRequest{})
		require.NoError(t, err)
		assert.Equal(t, created.ID, same.ID)
		assert.Equal(t, created.UpdatedAt.Unix(), same.UpdatedAt.Unix())
	})

	t.Run("Unknown category on update is a validation error", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		cats := SeedCategories(t, testDB.Pool, "Stationery")
		price := decimal.NewFromInt(3)

		created, err := svc.CreateItem(ctx, &model.ItemCreateRequest{
			Name:       "Pad",
			Price:      &price,
			CategoryID: cats[0],
		})
		require.NoError(t, err)

		missing := int64(9999)
		_, err = svc.UpdateItem(ctx, created.ID, &model.ItemUpdateRequest{CategoryID: &missing})

		de, ok := model.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, model.KindValidation, de.Kind)
		assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	})

	t.Run("Missing id never surfaces as internal", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := svc.GetItemByID(ctx, 424242)
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		err = svc.DeleteItem(ctx, 424242)
		assert.ErrorIs(t, err, model.ErrItemNotFound)
	})

	t.Run("Largest storable values round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		cats := SeedCategories(t, testDB.Pool, "Stationery")
		price := decimal.RequireFromString("9999999999.99")
		stock := model.MaxStock

		created, err := svc.CreateItem(ctx, &model.ItemCreateRequest{
			Name:       "Vault",
			Price:      &price,
			Stock:      &stock,
			CategoryID: cats[0],
		})
		require.NoError(t, err)
		assert.True(t, created.Price.Equal(price))
		assert.Equal(t, model.MaxStock, created.Stock)

		tooMuch := decimal.New(1, 10)
		_, err = svc.UpdateItem(ctx, created.ID, &model.ItemUpdateRequest{Price: &tooMuch})
		assert.ErrorIs(t, err, model.ErrPriceTooLarge)
	})
}

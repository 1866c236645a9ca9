package service

import (
	"net/url"
	"strings"

	"item-catalog/internal/model"

	"github.com/shopspring/decimal"
)

func validateCreate(req *model.ItemCreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.ErrNameRequired
	}
	if req.CategoryID <= 0 {
		return model.ErrCategoryRequired
	}
	if req.Price == nil {
		return model.ErrPriceRequired
	}
	if err := validatePrice(*req.Price); err != nil {
		return err
	}
	if req.Stock != nil {
		if err := validateStock(*req.Stock); err != nil {
			return err
		}
	}
	if req.ImageURL != "" && !isImageURL(req.ImageURL) {
		return model.ErrInvalidImageURL
	}
	return nil
}

// validateUpdate checks only the fields present in req.
func validateUpdate(req *model.ItemUpdateRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return model.ErrNameRequired
	}
	if req.CategoryID != nil && *req.CategoryID <= 0 {
		return model.ErrCategoryRequired
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return err
		}
	}
	if req.Stock != nil {
		if err := validateStock(*req.Stock); err != nil {
			return err
		}
	}
	if req.ImageURL != nil && !isImageURL(*req.ImageURL) {
		return model.ErrInvalidImageURL
	}
	return nil
}

func validateFilter(f model.ItemFilter) error {
	if f.SortBy != "" && !model.ItemSortFields[f.SortBy] {
		return model.ErrInvalidSortField
	}
	switch model.SortOrder(strings.ToLower(string(f.SortOrder))) {
	case "", model.SortAsc, model.SortDesc:
	default:
		return model.ErrInvalidFilter
	}
	if f.Page < 0 || f.PageSize < 0 || f.Page > model.MaxPage {
		return model.ErrInvalidFilter
	}
	if f.CategoryID != nil && *f.CategoryID <= 0 {
		return model.ErrInvalidFilter
	}
	if (f.MinPrice != nil && f.MinPrice.IsNegative()) || (f.MaxPrice != nil && f.MaxPrice.IsNegative()) {
		return model.ErrInvalidFilter
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return model.ErrInvalidPriceRange
	}
	return nil
}

// validatePrice rejects prices the NUMERIC(12,2) column cannot hold exactly.
func validatePrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return model.ErrPriceLessThanZero
	case p.GreaterThanOrEqual(model.PriceLimit):
		return model.ErrPriceTooLarge
	case !p.Equal(p.Truncate(model.PriceScale)):
		return model.ErrPriceScale
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return model.ErrStockLessThanZero
	}
	if stock > model.MaxStock {
		return model.ErrStockTooLarge
	}
	return nil
}

// isImageURL accepts absolute http and https URLs with a host.
func isImageURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

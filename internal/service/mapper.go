package service

import (
	"strings"

	"item-catalog/internal/model"
	"item-catalog/internal/repository"
)

func toCreateInput(req *model.ItemCreateRequest) repository.ItemCreateInput {
	in := repository.ItemCreateInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}
	if req.ImageURL != "" {
		in.MediaURLs = []string{req.ImageURL}
	}
	return in
}

func toUpdateInput(req *model.ItemUpdateRequest) repository.ItemUpdateInput {
	in := repository.ItemUpdateInput{
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		in.Name = &name
	}
	if req.ImageURL != nil {
		in.AddMediaURLs = []string{*req.ImageURL}
	}
	return in
}

func toItemSummary(row repository.ItemListRow) model.ItemSummary {
	urls := row.MediaURLs
	if urls == nil {
		urls = []string{}
	}
	return model.ItemSummary{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       row.Stock,
		Category: model.Category{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
		ImageURLs: urls,
	}
}

// toSummaryPage maps the rows of page and keeps its metadata unchanged.
func toSummaryPage(page *model.Paginated[repository.ItemListRow]) *model.Paginated[model.ItemSummary] {
	data := make([]model.ItemSummary, 0, len(page.Data))
	for _, row := range page.Data {
		data = append(data, toItemSummary(row))
	}
	return &model.Paginated[model.ItemSummary]{
		Data:       data,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps Offset within int at the largest page size.
	MaxPage         = math.MaxInt32
)

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sortable item fields, keyed by their public name.
var ItemSortFields = map[string]bool{
	"id":        true,
	"name":      true,
	"price":     true,
	"stock":     true,
	"createdAt": true,
}

// ItemFilter defines filtering, sorting, and pagination parameters for item lists.
type ItemFilter struct {
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  SortOrder
	Name       string
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    *bool
}

// Normalise fills defaults and clamps paging values.
func (f ItemFilter) Normalise() ItemFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.SortBy == "" {
		f.SortBy = "id"
	}
	f.SortOrder = SortOrder(strings.ToLower(string(f.SortOrder)))
	if f.SortOrder != SortDesc {
		f.SortOrder = SortAsc
	}
	f.Name = strings.TrimSpace(f.Name)
	return f
}

// Offset returns the number of rows to skip for the current page.
func (f ItemFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Paginated wraps one page of results with its metadata.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated builds a page, deriving the page count from total and pageSize.
func NewPaginated[T any](data []T, total int64, page, pageSize int) *Paginated[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

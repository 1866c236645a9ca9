package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, e.g. "price": 1.5.
	decimal.MarshalJSONWithoutQuotes = true
}

// Storage limits: price is NUMERIC(12,2) and stock is INTEGER.
const (
	PriceScale = 2
	MaxStock   = math.MaxInt32
)

// PriceLimit is the exclusive upper bound of a storable price.
var PriceLimit = decimal.New(1, 10)

// Item represents a product in the catalogue.
type Item struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	CategoryID  int64           `json:"categoryId" db:"category_id"`
	Media       []Media         `json:"media"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// Media is an image attached to an item.
type Media struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Category groups items. Only its id is referenced by item payloads.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ItemCreateRequest represents the request payload for creating an item.
type ItemCreateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  int64            `json:"categoryId"`
	ImageURL    string           `json:"imageUrl"`
}

// ItemUpdateRequest represents a partial update. Nil fields are left untouched;
// non-nil fields are applied even when they hold a zero value.
type ItemUpdateRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  *int64           `json:"categoryId,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
}

// ItemSummary is the list representation of an item.
type ItemSummary struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    Category        `json:"category"`
	ImageURLs   []string        `json:"imageUrls"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

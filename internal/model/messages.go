package model

// MessageKey identifies an entry in the message catalogue.
type MessageKey string

const (
	MsgPriceRequired      MessageKey = "PRICE_REQUIRED"
	MsgPriceLessThanZero  MessageKey = "PRICE_LESS_THAN_ZERO"
	MsgPriceTooLarge      MessageKey = "PRICE_TOO_LARGE"
	MsgPriceScale         MessageKey = "PRICE_SCALE"
	MsgStockLessThanZero  MessageKey = "STOCK_LESS_THAN_ZERO"
	MsgStockTooLarge      MessageKey = "STOCK_TOO_LARGE"
	MsgNameRequired       MessageKey = "NAME_REQUIRED"
	MsgCategoryRequired   MessageKey = "CATEGORY_REQUIRED"
	MsgInvalidImageURL    MessageKey = "INVALID_IMAGE_URL"
	MsgItemNotFound       MessageKey = "ITEM_NOT_FOUND"
	MsgCategoryNotFound   MessageKey = "CATEGORY_NOT_FOUND"
	MsgConstraintViolated MessageKey = "CONSTRAINT_VIOLATED"
	MsgInvalidFilter      MessageKey = "INVALID_FILTER"
	MsgInvalidSortField   MessageKey = "INVALID_SORT_FIELD"
	MsgInvalidPriceRange  MessageKey = "INVALID_PRICE_RANGE"
	MsgInvalidPage        MessageKey = "INVALID_PAGE"
	MsgInvalidPageSize    MessageKey = "INVALID_PAGE_SIZE"
	MsgInvalidCategoryID  MessageKey = "INVALID_CATEGORY_ID"
	MsgInvalidMinPrice    MessageKey = "INVALID_MIN_PRICE"
	MsgInvalidMaxPrice    MessageKey = "INVALID_MAX_PRICE"
	MsgInvalidInStock     MessageKey = "INVALID_IN_STOCK"
	MsgMissingAPIKey      MessageKey = "MISSING_API_KEY"
	MsgInvalidAPIKey      MessageKey = "INVALID_API_KEY"
	MsgInvalidItemID      MessageKey = "INVALID_ITEM_ID"
	MsgInvalidBody        MessageKey = "INVALID_BODY"
	MsgUnsupportedFormat  MessageKey = "UNSUPPORTED_FORMAT"
	MsgMethodNotAllowed   MessageKey = "METHOD_NOT_ALLOWED"
	MsgRouteNotFound      MessageKey = "ROUTE_NOT_FOUND"
	MsgInternalError      MessageKey = "INTERNAL_ERROR"
)

var messages = map[MessageKey]string{
	MsgPriceRequired:      "Price is required",
	MsgPriceLessThanZero:  "Price must not be less than zero",
	MsgPriceTooLarge:      "Price must be less than 10000000000",
	MsgPriceScale:         "Price must have at most two decimal places",
	MsgStockLessThanZero:  "Stock must not be less than zero",
	MsgStockTooLarge:      "Stock must not exceed 2147483647",
	MsgNameRequired:       "Name is required",
	MsgCategoryRequired:   "Category ID is required",
	MsgInvalidImageURL:    "Image URL must be an absolute http or https URL",
	MsgItemNotFound:       "Item not found",
	MsgCategoryNotFound:   "Category not found",
	MsgConstraintViolated: "Item data violates a storage constraint",
	MsgInvalidFilter:      "Invalid filter parameters",
	MsgInvalidSortField:   "Unsupported sort field",
	MsgInvalidPriceRange:  "Minimum price must not exceed maximum price",
	MsgInvalidPage:        "Page must be an integer",
	MsgInvalidPageSize:    "Page size must be an integer",
	MsgInvalidCategoryID:  "Category ID must be an integer",
	MsgInvalidMinPrice:    "Minimum price must be a number",
	MsgInvalidMaxPrice:    "Maximum price must be a number",
	MsgInvalidInStock:     "In stock must be true or false",
	MsgMissingAPIKey:      "Unauthorised: missing API key",
	MsgInvalidAPIKey:      "Unauthorised: invalid API key",
	MsgInvalidItemID:      "Item ID must be a positive integer",
	MsgInvalidBody:        "Invalid request body",
	MsgUnsupportedFormat:  "Content-Type must be application/json",
	MsgMethodNotAllowed:   "Method not allowed",
	MsgRouteNotFound:      "Route not found",
	MsgInternalError:      "Internal server error",
}

// Message returns the catalogue text for key, or the key itself when unknown.
func Message(key MessageKey) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return string(key)
}

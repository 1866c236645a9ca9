package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"item-catalog/internal/model"
	"item-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	service service.ItemService
	logger  zerolog.Logger
}

// NewItemHandler creates a new item handler.
func NewItemHandler(service service.ItemService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "item").Logger(),
	}
}

// Create handles POST /items requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ItemCreateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetByID handles GET /items/{id} requests.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetItemByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles PATCH /items/{id} requests.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req model.ItemUpdateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id} requests.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /items requests with filtering, sorting and pagination.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseItemFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, err.Error(), h.logger)
		return
	}

	page, err := h.service.FindFiltered(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// parseID reads the {id} path parameter. It writes a 400 and returns false
// when the id is not a positive integer.
func (h *ItemHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, model.Message(model.MsgInvalidItemID), h.logger)
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst. It writes the error
// response itself and returns false on failure.
func (h *ItemHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			writeError(w, r, http.StatusUnsupportedMediaType, model.ErrCodeUnsupportedFormat, model.Message(model.MsgUnsupportedFormat), h.logger)
			return false
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, model.Message(model.MsgInvalidBody), h.logger)
		return false
	}
	return true
}

// filterError names the catalogue message for a malformed query parameter.
type filterError struct {
	key model.MessageKey
}

func (e *filterError) Error() string {
	return model.Message(e.key)
}

// parseItemFilter reads list query parameters. Range and whitelist checks are
// left to the service.
func parseItemFilter(r *http.Request) (model.ItemFilter, error) {
	q := r.URL.Query()
	filter := model.ItemFilter{
		SortBy:    q.Get("sortBy"),
		SortOrder: model.SortOrder(q.Get("sortOrder")),
		Name:      q.Get("name"),
	}

	var err error
	if v := q.Get("page"); v != "" {
		if filter.Page, err = strconv.Atoi(v); err != nil {
			return filter, &filterError{key: model.MsgInvalidPage}
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if filter.PageSize, err = strconv.Atoi(v); err != nil {
			return filter, &filterError{key: model.MsgInvalidPageSize}
		}
	}
	if v := q.Get("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, &filterError{key: model.MsgInvalidCategoryID}
		}
		filter.CategoryID = &id
	}
	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, &filterError{key: model.MsgInvalidMinPrice}
		}
		filter.MinPrice = &d
	}
	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, &filterError{key: model.MsgInvalidMaxPrice}
		}
		filter.MaxPrice = &d
	}
	if v := q.Get("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, &filterError{key: model.MsgInvalidInStock}
		}
		filter.InStock = &b
	}

	return filter, nil
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"item-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name       string
		incoming   string
		expectKeep bool
	}{
		{name: "Generated when absent", incoming: "", expectKeep: false},
		{name: "Incoming id reused", incoming: "abc-123", expectKeep: true},
		{name: "Oversized id replaced", incoming: strings.Repeat("x", 200), expectKeep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()

			RequestID(testHandler).ServeHTTP(w, req)

			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tt.expectKeep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", RequestIDFromContext(req.Context()))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Preflight request",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			expectHandler:  false,
		},
		{
			name:           "GET request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "PATCH request",
			method:         http.MethodPatch,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := CORS(testHandler)

			req := httptest.NewRequest(tt.method, "/items", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, X-API-Key, X-Request-ID", w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	logger := zerolog.Nop()
	validAPIKey := "test-api-key-123"

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
		expectHandler  bool
		expectedMsg    string
	}{
		{
			name:           "Valid API key",
			apiKey:         validAPIKey,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Invalid API key",
			apiKey:         "invalid-key",
			expectedStatus: http.StatusUnauthorized,
			expectHandler:  false,
			expectedMsg:    model.Message(model.MsgInvalidAPIKey),
		},
		{
			name:           "Missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
			expectHandler:  false,
			expectedMsg:    model.Message(model.MsgMissingAPIKey),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RequestID(APIKeyAuth(validAPIKey, logger)(testHandler))

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)

			if tt.expectedMsg != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeUnauthorised, resp.Error)
				assert.Equal(t, tt.expectedMsg, resp.Message)
				assert.Equal(t, w.Header().Get(RequestIDHeader), resp.CorrelationID)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		path           string
		handlerStatus  int
		expectedStatus int
	}{
		{
			name:           "Successful request",
			method:         http.MethodGet,
			path:           "/items",
			handlerStatus:  http.StatusOK,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found request",
			method:         http.MethodGet,
			path:           "/items/999",
			handlerStatus:  http.StatusNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Server error",
			method:         http.MethodPost,
			path:           "/items",
			handlerStatus:  http.StatusInternalServerError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
			})

			handler := Logging(logger)(testHandler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		shouldPanic    bool
		panicValue     interface{}
		expectedStatus int
	}{
		{
			name:           "No panic",
			shouldPanic:    false,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Panic with string",
			shouldPanic:    true,
			panicValue:     "something went wrong",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Panic with error",
			shouldPanic:    true,
			panicValue:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := Recovery(logger)(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.shouldPanic {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeInternalError, resp.Error)
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "Status OK", statusCode: http.StatusOK},
		{name: "Status Created", statusCode: http.StatusCreated},
		{name: "Status No Content", statusCode: http.StatusNoContent},
		{name: "Status Internal Server Error", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			rw.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, rw.statusCode)
			assert.Equal(t, tt.statusCode, w.Code)
		})
	}
}

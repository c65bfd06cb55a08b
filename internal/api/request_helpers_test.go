package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathUUID(t *testing.T) {
	id := uuid.New()

	got, err := getPathUUID(requestWithParam("id", id.String()), "id", domain.ErrPlaceNotFound)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, raw := range []string{"", "not-a-uuid", "1234"} {
		_, err := getPathUUID(requestWithParam("id", raw), "id", domain.ErrPlaceNotFound)
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound, "value %q", raw)
	}
}

func TestHandlePathUUID_WritesNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	_, ok := handlePathUUID(w, requestWithParam("id", "garbage"), "id", domain.ErrReviewNotFound, testutils.DiscardLogger())

	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Review not found")
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedOK      bool
		expectedStatus  int
		expectedMessage string
	}{
		{name: "valid", body: `{"title":"Loft","price":"99.5","owner_id":"abc"}`, expectedOK: true},
		{name: "price alias", body: `{"title":"Loft","price_per_night":80,"owner_id":"abc"}`, expectedOK: true},
		{name: "empty body", body: "", expectedStatus: http.StatusBadRequest, expectedMessage: msgNoData},
		{name: "malformed JSON", body: `{"title":`, expectedStatus: http.StatusBadRequest, expectedMessage: msgInvalidRequest},
		{name: "wrong type", body: `{"title":7}`, expectedStatus: http.StatusBadRequest, expectedMessage: msgInvalidRequest},
		{name: "malformed number", body: `{"title":"Loft","price":"cheap","owner_id":"abc"}`, expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid number format"},
		{name: "missing required", body: `{"title":"Loft","owner_id":"abc"}`, expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid price: required field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/places", strings.NewReader(tt.body))

			var req CreatePlaceRequest
			ok := decodeRequest(w, r, &req, testutils.DiscardLogger())

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				require.NotNil(t, req.Price)
				return
			}
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
		})
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPromo(t *testing.T, s *store.Store, code string) model.Promo {
	t.Helper()
	promo, err := s.AddPromo(context.Background(), model.PromoRequest{
		Code:      code,
		Type:      model.PromoPercentage,
		Value:     10,
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		Active:    true,
	})
	require.NoError(t, err)
	return promo
}

func TestPromoHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Valid percentage promo",
			body:           `{"code": "SPRING10", "type": "percentage", "value": 10, "startDate": "2024-03-01", "endDate": "2024-03-31", "active": true}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Valid fixed promo",
			body:           `{"code": "FLAT5", "type": "fixed", "value": 5, "startDate": "2024-03-01", "endDate": "2024-03-31", "active": false}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "End date before start date",
			body:           `{"code": "BAD", "type": "fixed", "value": 5, "startDate": "2024-03-31", "endDate": "2024-03-01", "active": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "End date equal to start date",
			body:           `{"code": "BAD", "type": "fixed", "value": 5, "startDate": "2024-03-01", "endDate": "2024-03-01", "active": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown type",
			body:           `{"code": "BAD", "type": "bogo", "value": 5, "startDate": "2024-03-01", "endDate": "2024-03-31", "active": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing code",
			body:           `{"type": "fixed", "value": 5, "startDate": "2024-03-01", "endDate": "2024-03-31", "active": true}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPromoHandler(newTestStore(t), zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/promos", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var promo model.Promo
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promo))
				assert.Equal(t, "PROM-01", promo.ID)
			}
		})
	}
}

func TestPromoHandler_List(t *testing.T) {
	s := newTestStore(t)
	createPromo(t, s, "SPRING10")
	createPromo(t, s, "SUMMER20")

	h := NewPromoHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/promos", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var promos []model.Promo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promos))
	require.Len(t, promos, 2)
	assert.Equal(t, "SPRING10", promos[0].Code)
}

func TestPromoHandler_GetByID(t *testing.T) {
	s := newTestStore(t)
	created := createPromo(t, s, "SPRING10")
	h := NewPromoHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/promos/"+created.ID, nil)
	w := httptest.NewRecorder()
	h.GetByID(w, req, created.ID)

	assert.Equal(t, http.StatusOK, w.Code)

	var promo model.Promo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promo))
	assert.Equal(t, created, promo)
}

func TestPromoHandler_Update(t *testing.T) {
	s := newTestStore(t)
	created := createPromo(t, s, "SPRING10")
	h := NewPromoHandler(s, zerolog.Nop())

	t.Run("Replaces record", func(t *testing.T) {
		body := `{"code": "SPRING15", "type": "percentage", "value": 15, "startDate": "2024-01-01", "endDate": "2024-06-30", "active": false}`
		req := httptest.NewRequest(http.MethodPut, "/api/promos/"+created.ID, bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Update(w, req, created.ID)

		assert.Equal(t, http.StatusOK, w.Code)

		updated := s.PromoByID(created.ID)
		require.NotNil(t, updated)
		assert.Equal(t, "SPRING15", updated.Code)
		assert.False(t, updated.Active)
	})

	t.Run("Rejects inverted window", func(t *testing.T) {
		body := `{"code": "SPRING15", "type": "percentage", "value": 15, "startDate": "2024-06-30", "endDate": "2024-01-01", "active": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/promos/"+created.ID, bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Update(w, req, created.ID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		body := `{"code": "SPRING15", "type": "percentage", "value": 15, "startDate": "2024-01-01", "endDate": "2024-06-30", "active": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/promos/PROM-99", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Update(w, req, "PROM-99")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPromoHandler_Remove(t *testing.T) {
	s := newTestStore(t)
	created := createPromo(t, s, "SPRING10")
	h := NewPromoHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/promos/"+created.ID, nil)
	w := httptest.NewRecorder()
	h.Remove(w, req, created.ID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, s.PromoByID(created.ID))
}

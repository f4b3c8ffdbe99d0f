package store

import (
	"context"
	"testing"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePromo() model.PromoRequest {
	return model.PromoRequest{
		Code:      "SPRING20",
		Type:      model.PromoPercentage,
		Value:     20,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Active:    true,
	}
}

func TestAddPromo_AssignsID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	promo, err := s.AddPromo(ctx, samplePromo())
	require.NoError(t, err)

	assert.Equal(t, "PROM-01", promo.ID)
	assert.Len(t, s.Promos(), 1)
}

func TestAddPromo_RejectsInvalidDateWindow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "end before start", startDate: "2024-03-31", endDate: "2024-03-01"},
		{name: "end equals start", startDate: "2024-03-15", endDate: "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := samplePromo()
			req.StartDate = tt.startDate
			req.EndDate = tt.endDate

			_, err := s.AddPromo(ctx, req)
			assert.ErrorIs(t, err, model.ErrPromoDateRange)
			assert.Empty(t, s.Promos(), "rejected adds leave the collection unchanged")
		})
	}
}

func TestAddPromo_DoesNotFixExistingInvalidRecords(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()

	// A record with an inverted window already in storage stays as it is
	invalid := []model.Promo{{
		ID:        "PROM-01",
		Code:      "LEGACY",
		Type:      model.PromoFixed,
		Value:     5,
		StartDate: "2024-06-01",
		EndDate:   "2024-01-01",
		Active:    true,
	}}
	require.NoError(t, kv.SaveList(ctx, storage, kv.KeyPromoList, invalid))

	s := New(ctx, storage, idgen.New(storage, zerolog.Nop()), zerolog.Nop())
	require.Len(t, s.Promos(), 1)
	assert.Equal(t, "2024-01-01", s.Promos()[0].EndDate)
}

func TestUpdatePromo_ReplacesByID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddPromo(ctx, samplePromo())
	require.NoError(t, err)

	created.Code = "SPRING25"
	created.Value = 25
	result, err := s.UpdatePromo(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeApplied, result.Outcome)

	got := s.PromoByID(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "SPRING25", got.Code)
	assert.Equal(t, 25.0, got.Value)
}

func TestUpdatePromo_ValidatesDateWindow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddPromo(ctx, samplePromo())
	require.NoError(t, err)

	created.EndDate = created.StartDate
	_, err = s.UpdatePromo(ctx, created)
	assert.ErrorIs(t, err, model.ErrPromoDateRange)
}

func TestUpdatePromo_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	promo := model.Promo{ID: "PROM-99", Code: "GHOST", StartDate: "2024-01-01", EndDate: "2024-02-01"}
	result, err := s.UpdatePromo(context.Background(), promo)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNotFound, result.Outcome)
}

func TestRemovePromo_HardDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddPromo(ctx, samplePromo())
	require.NoError(t, err)

	result, err := s.RemovePromo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeApplied, result.Outcome)
	assert.Nil(t, s.PromoByID(created.ID))
	assert.Empty(t, s.Promos())
}

func TestRemovePromo_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	result, err := s.RemovePromo(context.Background(), "PROM-404")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNotFound, result.Outcome)
}

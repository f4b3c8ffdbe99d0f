package store

import (
	"context"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"
)

// AddPromo validates the date window, assigns an id, appends the promo, and
// persists the collection. The window is only checked here, at write time:
// records already stored with an invalid window are left as they are.
func (s *Store) AddPromo(ctx context.Context, req model.PromoRequest) (model.Promo, error) {
	if req.EndDate <= req.StartDate {
		return model.Promo{}, model.ErrPromoDateRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	promo := model.Promo{
		ID:        s.ids.Next(ctx, idgen.PrefixPromo),
		Code:      req.Code,
		Type:      req.Type,
		Value:     req.Value,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Active:    req.Active,
	}

	s.promos = append(s.promos, promo)
	saveCollection(ctx, s, kv.KeyPromoList, s.promos)

	s.logger.Info().
		Str("promo_id", promo.ID).
		Str("code", promo.Code).
		Msg("promo added")

	return promo, nil
}

// UpdatePromo replaces the promo with the matching id, enforcing the same
// write-time date validation as AddPromo. An unknown id is a no-op.
func (s *Store) UpdatePromo(ctx context.Context, promo model.Promo) (model.MutationResult, error) {
	if promo.EndDate <= promo.StartDate {
		return model.MutationResult{}, model.ErrPromoDateRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.promos {
		if s.promos[i].ID == promo.ID {
			s.promos[i] = promo
			saveCollection(ctx, s, kv.KeyPromoList, s.promos)
			s.logger.Info().Str("promo_id", promo.ID).Msg("promo updated")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	s.logger.Debug().Str("promo_id", promo.ID).Msg("promo not found for update")
	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// RemovePromo hard-deletes the promo. An unknown id is a no-op.
func (s *Store) RemovePromo(ctx context.Context, id string) (model.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.promos {
		if s.promos[i].ID == id {
			s.promos = append(s.promos[:i], s.promos[i+1:]...)
			saveCollection(ctx, s, kv.KeyPromoList, s.promos)
			s.logger.Info().Str("promo_id", id).Msg("promo removed")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// PromoByID returns the promo with the given id, or nil.
func (s *Store) PromoByID(id string) *model.Promo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.promos {
		if s.promos[i].ID == id {
			p := s.promos[i]
			return &p
		}
	}
	return nil
}

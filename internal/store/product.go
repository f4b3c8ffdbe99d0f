package store

import (
	"context"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"
)

// AddProduct validates the request, assigns an id, appends the product, and
// persists the collection.
func (s *Store) AddProduct(ctx context.Context, req model.ProductRequest) (model.Product, error) {
	if req.Price < 0 {
		return model.Product{}, model.ErrNegativePrice
	}
	if req.Stock < 0 {
		return model.Product{}, model.ErrNegativeStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := model.Product{
		ID:       s.ids.Next(ctx, idgen.PrefixProduct),
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Active:   req.IsActive(),
	}

	s.products = append(s.products, product)
	saveCollection(ctx, s, kv.KeyProductList, s.products)

	s.logger.Info().
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product added")

	return product, nil
}

// UpdateProduct replaces the product with the matching id. An unknown id is
// a no-op, reported in the result rather than as an error.
func (s *Store) UpdateProduct(ctx context.Context, product model.Product) (model.MutationResult, error) {
	if product.Price < 0 {
		return model.MutationResult{}, model.ErrNegativePrice
	}
	if product.Stock < 0 {
		return model.MutationResult{}, model.ErrNegativeStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			saveCollection(ctx, s, kv.KeyProductList, s.products)
			s.logger.Info().Str("product_id", product.ID).Msg("product updated")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	s.logger.Debug().Str("product_id", product.ID).Msg("product not found for update")
	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// DeactivateProduct soft-deletes a product: the record stays in the
// collection with Active set to false, stock and price untouched. The
// confirmed flag is the caller's pre-confirmed decision; without it nothing
// changes. An unknown id is a no-op.
func (s *Store) DeactivateProduct(ctx context.Context, id string, confirmed bool) (model.MutationResult, error) {
	if !confirmed {
		s.logger.Debug().Str("product_id", id).Msg("deactivation not confirmed")
		return model.MutationResult{Outcome: model.OutcomeDeclined}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Active = false
			saveCollection(ctx, s, kv.KeyProductList, s.products)
			s.logger.Info().Str("product_id", id).Msg("product deactivated")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// ProductByID returns the product with the given id, or nil.
func (s *Store) ProductByID(id string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

package store

import (
	"context"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"
)

// AddOrder validates the request, assigns an id, appends the order, and
// debits product stock per line. A line whose debit would drive stock
// negative is skipped and reported as a warning; the order is still created
// with the other lines applied. Products are persisted only when at least
// one debit was committed.
func (s *Store) AddOrder(ctx context.Context, req model.OrderRequest) (model.OrderPlacement, error) {
	if len(req.Items) == 0 {
		return model.OrderPlacement{}, model.ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return model.OrderPlacement{}, model.ErrInvalidQuantity
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.mergeItems(req.Items)

	order := model.Order{
		ID:     s.ids.Next(ctx, idgen.PrefixOrder),
		Date:   req.Date,
		Items:  items,
		Status: req.Status,
		Note:   req.Note,
	}

	warnings, stockChanged := s.debitStock(items)

	s.orders = append(s.orders, order)
	saveCollection(ctx, s, kv.KeyOrderList, s.orders)
	if stockChanged {
		saveCollection(ctx, s, kv.KeyProductList, s.products)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Int("stock_warnings", len(warnings)).
		Msg("order placed")

	return model.OrderPlacement{Order: order, Warnings: warnings}, nil
}

// mergeItems folds duplicate product lines into one line summing their
// quantities, resolving each line's price against the catalogue when the
// request did not pin one. Line order follows first appearance.
func (s *Store) mergeItems(reqItems []model.ItemRequest) []model.Item {
	items := make([]model.Item, 0, len(reqItems))
	for _, ri := range reqItems {
		price := 0.0
		if ri.Price != nil {
			price = *ri.Price
		} else if p := s.findProduct(ri.ProductID); p != nil {
			price = p.Price
		}

		merged := false
		for i := range items {
			if items[i].ProductID == ri.ProductID {
				items[i].Qty += ri.Qty
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, model.Item{ProductID: ri.ProductID, Qty: ri.Qty, Price: price})
		}
	}
	return items
}

// debitStock applies stock decrements for each line. Lines referencing
// unknown products are left alone: the product reference is weak.
func (s *Store) debitStock(items []model.Item) ([]model.StockWarning, bool) {
	var warnings []model.StockWarning
	changed := false

	for _, item := range items {
		p := s.findProduct(item.ProductID)
		if p == nil {
			continue
		}
		newStock := p.Stock - item.Qty
		if newStock < 0 {
			s.logger.Warn().
				Str("product_id", p.ID).
				Str("name", p.Name).
				Int("requested", item.Qty).
				Int("available", p.Stock).
				Msg("insufficient stock, line skipped")
			warnings = append(warnings, model.StockWarning{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: item.Qty,
				Available: p.Stock,
			})
			continue
		}
		p.Stock = newStock
		changed = true
	}

	return warnings, changed
}

// findProduct returns a pointer into the products slice. Callers must hold
// the store lock.
func (s *Store) findProduct(id string) *model.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

// UpdateOrder replaces the order with the matching id. Stock is not
// re-derived from the new item list and removal never restores it; stock
// reflects what was debited at placement time only. An unknown id is a
// no-op.
func (s *Store) UpdateOrder(ctx context.Context, order model.Order) (model.MutationResult, error) {
	if len(order.Items) == 0 {
		return model.MutationResult{}, model.ErrEmptyOrder
	}
	for _, item := range order.Items {
		if item.Qty <= 0 {
			return model.MutationResult{}, model.ErrInvalidQuantity
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			saveCollection(ctx, s, kv.KeyOrderList, s.orders)
			s.logger.Info().
				Str("order_id", order.ID).
				Str("status", string(order.Status)).
				Msg("order updated")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	s.logger.Debug().Str("order_id", order.ID).Msg("order not found for update")
	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// RemoveOrder hard-deletes the order. Stock debited at placement is not
// restored. An unknown id is a no-op.
func (s *Store) RemoveOrder(ctx context.Context, id string) (model.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			saveCollection(ctx, s, kv.KeyOrderList, s.orders)
			s.logger.Info().Str("order_id", id).Msg("order removed")
			return model.MutationResult{Outcome: model.OutcomeApplied}, nil
		}
	}

	return model.MutationResult{Outcome: model.OutcomeNotFound}, nil
}

// OrderByID returns the order with the given id, or nil.
func (s *Store) OrderByID(id string) *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o
		}
	}
	return nil
}

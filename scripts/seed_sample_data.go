package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
)

// seedSampleData populates a fresh SQLite database with a small catalogue,
// a few orders, and two promos so the API has something to serve out of the
// box. Run it once against an empty STORAGE_PATH.
func main() {
	path := os.Getenv("STORAGE_PATH")
	if path == "" {
		path = "data/backoffice.db"
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	storage, err := kv.OpenSQLite(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer storage.Close()

	s := store.New(ctx, storage, idgen.New(storage, logger), logger)
	if len(s.Products()) > 0 {
		log.Fatalf("Database at %s already contains data, refusing to seed", path)
	}

	products := []model.ProductRequest{
		{Name: "Espresso Beans 1kg", SKU: "BEAN-ESP-1", Price: 18.50, Stock: 42, Category: "Coffee"},
		{Name: "Filter Blend 500g", SKU: "BEAN-FLT-5", Price: 9.75, Stock: 7, Category: "Coffee"},
		{Name: "Ceramic Mug", SKU: "MUG-CER-01", Price: 12.00, Stock: 0, Category: "Merchandise"},
		{Name: "Pour-Over Kettle", SKU: "KTL-PO-01", Price: 45.00, Stock: 15, Category: "Equipment"},
	}

	created := make([]model.Product, 0, len(products))
	for _, req := range products {
		p, err := s.AddProduct(ctx, req)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", req.Name, err)
		}
		created = append(created, p)
		fmt.Printf("Created product %s (%s)\n", p.ID, p.Name)
	}

	orders := []model.OrderRequest{
		{
			Date:   "2026-07-12",
			Status: model.StatusDelivered,
			Items:  []model.ItemRequest{{ProductID: created[0].ID, Qty: 2}},
		},
		{
			Date:   "2026-08-03",
			Status: model.StatusShipped,
			Items: []model.ItemRequest{
				{ProductID: created[0].ID, Qty: 1},
				{ProductID: created[3].ID, Qty: 1},
			},
		},
		{
			Date:   "2026-08-21",
			Status: model.StatusPending,
			Items:  []model.ItemRequest{{ProductID: created[1].ID, Qty: 3}},
			Note:   "Gift wrap requested",
		},
	}

	for _, req := range orders {
		placement, err := s.AddOrder(ctx, req)
		if err != nil {
			log.Fatalf("Failed to seed order: %v", err)
		}
		fmt.Printf("Created order %s with %d line(s)\n", placement.Order.ID, len(placement.Order.Items))
		for _, w := range placement.Warnings {
			fmt.Printf("  warning: %s requested %d, only %d available\n", w.ProductID, w.Requested, w.Available)
		}
	}

	promos := []model.PromoRequest{
		{Code: "SUMMER10", Type: model.PromoPercentage, Value: 10, StartDate: "2026-06-01", EndDate: "2026-08-31", Active: true},
		{Code: "WELCOME5", Type: model.PromoFixed, Value: 5, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}

	for _, req := range promos {
		p, err := s.AddPromo(ctx, req)
		if err != nil {
			log.Fatalf("Failed to seed promo %s: %v", req.Code, err)
		}
		fmt.Printf("Created promo %s (%s)\n", p.ID, p.Code)
	}

	fmt.Printf("\nSample data written to %s\n", path)
}

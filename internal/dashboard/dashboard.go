// Package dashboard derives KPI and chart figures from the current
// collections. Every function here is pure: no mutation, no persistence,
// identical inputs yield identical outputs.
package dashboard

import (
	"sort"
	"time"

	"backoffice/internal/model"
)

// lowStockThreshold is the level below which an in-stock product raises a
// low-stock alert.
const lowStockThreshold = 10

// OrderTotal returns the order's value: the sum of price * qty over its
// lines, at the prices captured when the order was placed.
func OrderTotal(order model.Order) float64 {
	total := 0.0
	for _, item := range order.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// OrderQuantity returns the total number of units across the order's lines.
func OrderQuantity(order model.Order) int {
	qty := 0
	for _, item := range order.Items {
		qty += item.Qty
	}
	return qty
}

// TotalRevenue returns the sum of OrderTotal over all orders.
func TotalRevenue(orders []model.Order) float64 {
	total := 0.0
	for _, o := range orders {
		total += OrderTotal(o)
	}
	return total
}

// RevenueInRange sums the revenue of orders whose date satisfies the
// predicate.
func RevenueInRange(orders []model.Order, include func(date string) bool) float64 {
	total := 0.0
	for _, o := range orders {
		if include(o.Date) {
			total += OrderTotal(o)
		}
	}
	return total
}

// MonthRevenue returns the revenue from orders dated in the same calendar
// month as now.
func MonthRevenue(orders []model.Order, now time.Time) float64 {
	month := now.Format("2006-01")
	return RevenueInRange(orders, func(date string) bool {
		return monthKey(date) == month
	})
}

// MonthOrderCount returns the number of orders dated in the same calendar
// month as now.
func MonthOrderCount(orders []model.Order, now time.Time) int {
	month := now.Format("2006-01")
	count := 0
	for _, o := range orders {
		if monthKey(o.Date) == month {
			count++
		}
	}
	return count
}

// AverageOrderValue returns total revenue divided by order count, or 0 when
// there are no orders.
func AverageOrderValue(orders []model.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	return TotalRevenue(orders) / float64(len(orders))
}

// MonthRevenuePoint is one bucket in the revenue-by-month series.
type MonthRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// RevenueByMonth groups orders by the YYYY-MM prefix of their date and sums
// each group's revenue, ascending by month. Orders with a blank or
// too-short date are excluded.
func RevenueByMonth(orders []model.Order) []MonthRevenuePoint {
	byMonth := make(map[string]float64)
	for _, o := range orders {
		key := monthKey(o.Date)
		if key == "" {
			continue
		}
		byMonth[key] += OrderTotal(o)
	}

	points := make([]MonthRevenuePoint, 0, len(byMonth))
	for month, revenue := range byMonth {
		points = append(points, MonthRevenuePoint{Month: month, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// StatusCount is one bucket in the orders-by-status series.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// OrdersByStatus counts orders per status value, one entry per distinct
// status in order of first appearance.
func OrdersByStatus(orders []model.Order) []StatusCount {
	index := make(map[model.Status]int)
	var counts []StatusCount
	for _, o := range orders {
		if i, ok := index[o.Status]; ok {
			counts[i].Count++
			continue
		}
		index[o.Status] = len(counts)
		counts = append(counts, StatusCount{Status: o.Status, Count: 1})
	}
	return counts
}

// ActivePromoCount returns the number of promos currently flagged active.
func ActivePromoCount(promos []model.Promo) int {
	count := 0
	for _, p := range promos {
		if p.Active {
			count++
		}
	}
	return count
}

// LowStockAlerts returns active products with more than zero but fewer than
// ten units in stock.
func LowStockAlerts(products []model.Product) []model.Product {
	var alerts []model.Product
	for _, p := range products {
		if p.Active && p.Stock > 0 && p.Stock < lowStockThreshold {
			alerts = append(alerts, p)
		}
	}
	return alerts
}

// OutOfStockAlerts returns active products with no stock left.
func OutOfStockAlerts(products []model.Product) []model.Product {
	var alerts []model.Product
	for _, p := range products {
		if p.Active && p.Stock == 0 {
			alerts = append(alerts, p)
		}
	}
	return alerts
}

// monthKey returns the YYYY-MM prefix of an ISO-8601 date string, or ""
// when the date is too short to carry one.
func monthKey(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// Summary bundles the KPI block and chart series for the dashboard page.
type Summary struct {
	ActivePromos    int                 `json:"activePromos"`
	MonthRevenue    float64             `json:"monthRevenue"`
	TotalRevenue    float64             `json:"totalRevenue"`
	OrderCount      int                 `json:"orderCount"`
	MonthOrderCount int                 `json:"monthOrderCount"`
	AverageOrderVal float64             `json:"averageOrderValue"`
	RevenueByMonth  []MonthRevenuePoint `json:"revenueByMonth"`
	OrdersByStatus  []StatusCount       `json:"ordersByStatus"`
}

// BuildSummary derives the full dashboard summary from the current
// collections.
func BuildSummary(orders []model.Order, promos []model.Promo, now time.Time) Summary {
	return Summary{
		ActivePromos:    ActivePromoCount(promos),
		MonthRevenue:    MonthRevenue(orders, now),
		TotalRevenue:    TotalRevenue(orders),
		OrderCount:      len(orders),
		MonthOrderCount: MonthOrderCount(orders, now),
		AverageOrderVal: AverageOrderValue(orders),
		RevenueByMonth:  RevenueByMonth(orders),
		OrdersByStatus:  OrdersByStatus(orders),
	}
}

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors groups the Prometheus metrics served on the metrics port.
type Collectors struct {
	Registry *prometheus.Registry

	OrdersCreated   *prometheus.CounterVec
	OrderStatus     *prometheus.GaugeVec
	PaymentOutcomes *prometheus.CounterVec
	OccupiedTables  prometheus.Gauge
	LowStockItems   prometheus.Gauge
}

// NewCollectors creates and registers the dashboard collectors on a fresh
// registry.
func NewCollectors() *Collectors {
	registry := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders created, by order type",
		},
		[]string{"order_type"},
	)

	orderStatus := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orders_by_status",
			Help: "Current number of orders in each status",
		},
		[]string{"status"},
	)

	paymentOutcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_outcomes_total",
			Help: "Simulated payment results",
		},
		[]string{"outcome"},
	)

	occupiedTables := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "occupied_tables",
			Help: "Number of currently occupied tables",
		},
	)

	lowStockItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "low_stock_items",
			Help: "Inventory items at or below their reorder level",
		},
	)

	collectors := &Collectors{
		Registry:        registry,
		OrdersCreated:   ordersCreated,
		OrderStatus:     orderStatus,
		PaymentOutcomes: paymentOutcomes,
		OccupiedTables:  occupiedTables,
		LowStockItems:   lowStockItems,
	}

	registry.MustRegister(ordersCreated, orderStatus, paymentOutcomes, occupiedTables, lowStockItems)
	return collectors
}

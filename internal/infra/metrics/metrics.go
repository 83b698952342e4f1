// Package metrics exposes Prometheus counters for mutations and gauges that
// read the live summaries at scrape time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
)

const namespace = "concretrack"

type Sources struct {
	Materials  interface{ Summary() materials.Summary }
	Orders     interface{ Summary() orders.Summary }
	Checklists interface{ Summary() checklists.Summary }
}

type Metrics struct {
	StockUpdates     *prometheus.CounterVec
	OrdersCreated    prometheus.Counter
	OrderStatus      *prometheus.CounterVec
	ChecklistsOpened prometheus.Counter
	ItemsChecked     prometheus.Counter
	StockAlerts      prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, src Sources) *Metrics {
	m := &Metrics{
		StockUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "stock_updates_total",
			Help: "Stock updates by resulting band.",
		}, []string{"status"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "orders_created_total",
			Help: "Orders created.",
		}),
		OrderStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "order_status_updates_total",
			Help: "Order status updates by target status.",
		}, []string{"status"}),
		ChecklistsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "checklists_created_total",
			Help: "Checklists created.",
		}),
		ItemsChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "checklist_items_completed_total",
			Help: "Checklist items marked completed.",
		}),
		StockAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "stock_alerts_sent_total",
			Help: "Low-stock alerts delivered.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.StockUpdates, m.OrdersCreated, m.OrderStatus, m.ChecklistsOpened,
		m.ItemsChecked, m.StockAlerts, m.HTTPRequests, m.HTTPDuration,
	)
	if src.Materials != nil {
		registerMaterialGauges(reg, src.Materials)
	}
	if src.Orders != nil {
		reg.MustRegister(
			gauge("orders_active", "Orders scheduled, preparing or in progress.", func() float64 {
				return float64(src.Orders.Summary().ActiveOrders)
			}),
			gauge("orders_active_volume_m3", "Concrete volume of active orders.", func() float64 {
				return src.Orders.Summary().TotalVolumeActive
			}),
		)
	}
	if src.Checklists != nil {
		reg.MustRegister(gauge("checklist_completion_rate", "Percent of checklist items completed.", func() float64 {
			return src.Checklists.Summary().CompletionRate
		}))
	}
	return m
}

func registerMaterialGauges(reg prometheus.Registerer, src interface{ Summary() materials.Summary }) {
	bands := map[materials.Status]func(materials.Summary) int{
		materials.StatusCritical: func(s materials.Summary) int { return s.CriticalMaterials },
		materials.StatusLow:      func(s materials.Summary) int { return s.LowMaterials },
		materials.StatusOptimal:  func(s materials.Summary) int { return s.OptimalMaterials },
		materials.StatusHigh:     func(s materials.Summary) int { return s.HighMaterials },
	}
	for _, st := range materials.Statuses {
		pick := bands[st]
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "materials",
			Help:        "Materials per stock band.",
			ConstLabels: prometheus.Labels{"status": string(st)},
		}, func() float64 { return float64(pick(src.Summary())) }))
	}
	reg.MustRegister(gauge("inventory_value", "Sum of stock times unit cost.", func() float64 {
		return src.Summary().TotalInventoryValue
	}))
}

func gauge(name, help string, f func() float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, f)
}

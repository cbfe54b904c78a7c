package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webshop_products_created_total",
		Help: "Total number of products successfully created.",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webshop_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	OrderStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webshop_order_status_updates_total",
		Help: "Total number of successful order status updates.",
	},
		[]string{"status"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webshop_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	AuditEntriesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webshop_audit_entries_dropped_total",
		Help: "Audit log entries that could not be handed to a worker.",
	})
)

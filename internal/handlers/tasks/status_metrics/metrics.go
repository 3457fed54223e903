package status_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersTotal = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "fulfillment_orders_total",
		Help: "Number of orders per overall fulfillment status",
	},
	[]string{"status"},
)

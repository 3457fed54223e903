package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_rejected_total",
		Help: "Total number of requests rejected by the auth middleware",
	},
	[]string{"method", "route"},
)

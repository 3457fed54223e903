package identity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IdentityResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_resolutions_total",
		Help: "Total number of restaurant credential resolutions",
	},
	[]string{"result"},
)

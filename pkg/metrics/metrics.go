package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogsvc", Name: "post_operations_total", Help: "Number of post operations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogsvc", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogsvc", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PostOperations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

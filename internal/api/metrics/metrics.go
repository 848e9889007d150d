// Package metrics defines all custom Prometheus metrics for the countries
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry via promauto at
// package initialisation; request-level HTTP metrics come from the
// echoprometheus middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "countries_api"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// FavoritesOpsTotal counts favorites mutations and reads.
// Labels:
//   - op: "list", "add", or "remove"
//   - result: "success" or "error"
var FavoritesOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_ops_total",
		Help:      "Total number of favorites operations, by op and result.",
	},
	[]string{"op", "result"},
)

// RateLimitRejectedTotal counts requests rejected by the rate limiter.
var RateLimitRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejected_total",
		Help:      "Total number of requests rejected with HTTP 429.",
	},
)

// CountriesCacheTotal counts cache lookups for proxied country data.
// Label:
//   - result: "hit" or "miss"
var CountriesCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "countries_cache_total",
		Help:      "Total number of countries cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

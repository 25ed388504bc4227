// Package metrics defines and registers all custom Prometheus metrics for
// the publishing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// LoginsTotal counts login attempts that reached password verification.
// Labels:
//   - role: "admin" or "user"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal role and result.",
	},
	[]string{"role", "result"},
)

// AccountsCreatedTotal counts successfully created accounts.
// Label:
//   - role: "admin" or "user"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by principal role.",
	},
	[]string{"role"},
)

// ArticlesCreatedTotal counts successfully published articles.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles published.",
	},
)

// AuthFailuresTotal counts rejected bearer tokens.
// Label:
//   - reason: "malformed", "invalid_signature", "expired", "unauthorized"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected bearer tokens, by failure reason.",
	},
	[]string{"reason"},
)

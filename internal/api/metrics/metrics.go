// Package metrics defines the Prometheus metrics of the accounts API. All
// metrics register with the default registry on import and are served by
// promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "exists", "admin_rejected", "in_progress", "invalid", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_user", "incorrect_password", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SelfGrantedAdminsTotal counts signups that were admitted with a
// caller-supplied admin flag.
var SelfGrantedAdminsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "self_granted_admins_total",
		Help:      "Total number of accounts created with self-assigned admin rights.",
	},
)

// GateRejectionsTotal counts requests stopped by the auth gates.
// Label:
//   - reason: "unauthenticated" or "not_admin"
var GateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Total number of requests rejected by the authentication or admin gate.",
	},
	[]string{"reason"},
)

// FailuresTotal counts failed API responses.
// Label:
//   - kind: "validation", "auth", "authorization", "internal", "http"
var FailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "failures_total",
		Help:      "Total number of failed responses, by error kind.",
	},
	[]string{"kind"},
)

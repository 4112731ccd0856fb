// Package metrics defines and registers all custom Prometheus metrics for
// the Nexospark website API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics endpoint wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nexospark"

// AuthAttemptsTotal counts registration and login attempts.
// Labels:
//   - op: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by outcome.",
	},
	[]string{"op", "result"},
)

// ContentWritesTotal counts mutations on content collections.
// Labels:
//   - collection: "blogs", "courses", "products", or "services"
//   - op: "create", "update", or "delete"
var ContentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_writes_total",
		Help:      "Total number of content mutations, by collection and operation.",
	},
	[]string{"collection", "op"},
)

// CacheLookupsTotal counts content cache decisions.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of content cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ApplicationsSubmittedTotal counts job applications submitted.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

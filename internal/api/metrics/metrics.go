// Package metrics defines and registers all custom Prometheus metrics for
// the profile API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profile_api"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfilesUpsertedTotal counts profile create/update submissions.
var ProfilesUpsertedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_upserted_total",
		Help:      "Total number of profile create/update submissions applied.",
	},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts activity entries that failed persistence.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity entries that failed processing.",
	},
)

// ActivityDroppedTotal counts activity entries dropped on a full queue.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity entries dropped because the queue was full.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the minitweet API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed on /metrics alongside the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "minitweet"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Tweet metrics ─────────────────────────────────────────────────────────────

// TweetsCreatedTotal counts persisted tweets.
var TweetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tweets_created_total",
		Help:      "Total number of tweets persisted.",
	},
)

// TweetsRejectedTotal counts tweets rejected for exceeding the length limit.
var TweetsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tweets_rejected_total",
		Help:      "Total number of tweets rejected by the 300-character limit.",
	},
)

// ── Timeline metrics ──────────────────────────────────────────────────────────

// TimelineRequestsTotal counts timeline reads.
// Label:
//   - source: "public" (GET /timeline/:user_id) or "authenticated" (GET /timeline)
var TimelineRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_requests_total",
		Help:      "Total number of timeline reads, labelled by route.",
	},
	[]string{"source"},
)

// TimelineCacheTotal counts timeline cache lookups.
// Label:
//   - result: "hit" or "miss"
var TimelineCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_cache_total",
		Help:      "Total number of timeline cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// TimelineLength observes the number of entries returned per timeline read.
var TimelineLength = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "timeline_length",
		Help:      "Number of entries returned per timeline read.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	},
)

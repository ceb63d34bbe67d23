// Package metrics defines the custom Prometheus metrics for the movie
// rating service. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movierating"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization-guard denials.
// Label:
//   - required_role: the role the denied route required ("admin" or "viewer")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the role guard, by required role.",
	},
	[]string{"required_role"},
)

// RatingsSubmittedTotal counts successfully persisted ratings.
var RatingsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of ratings submitted successfully.",
	},
)

// MovieMutationsTotal counts admin catalogue changes.
// Label:
//   - action: "add", "edit", or "delete"
var MovieMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_mutations_total",
		Help:      "Total number of admin movie mutations, by action.",
	},
	[]string{"action"},
)

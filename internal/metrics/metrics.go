// Package metrics provides Prometheus collectors and the exposition
// handler for dockpanel runtime metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	inventoryRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dockpanel_inventory_requests_total",
			Help: "Total container inventory reads",
		},
	)
	inventoryFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dockpanel_inventory_failures_total",
			Help: "Total failed container inventory reads",
		},
	)
	logins = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dockpanel_logins_total",
			Help: "Total successful logins",
		},
	)
	loginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dockpanel_login_failures_total",
			Help: "Total rejected login attempts",
		},
	)
	registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dockpanel_registrations_total",
			Help: "Total accounts registered",
		},
	)
)

func init() {
	prometheus.MustRegister(
		inventoryRequests,
		inventoryFailures,
		logins,
		loginFailures,
		registrations,
	)
}

// IncInventoryRequest counts one inventory read attempt.
func IncInventoryRequest() { inventoryRequests.Inc() }

// IncInventoryFailure counts one failed inventory read.
func IncInventoryFailure() { inventoryFailures.Inc() }

// IncLogin counts one successful login.
func IncLogin() { logins.Inc() }

// IncLoginFailure counts one rejected login attempt.
func IncLoginFailure() { loginFailures.Inc() }

// IncRegistration counts one newly registered account.
func IncRegistration() { registrations.Inc() }

// Handler returns the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

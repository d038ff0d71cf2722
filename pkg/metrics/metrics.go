package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "timecoach", Name: "logins_total", Help: "Number of login attempts by outcome."},
		[]string{"outcome"},
	)
	AuthRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "timecoach", Name: "auth_rejected_total", Help: "Number of requests rejected by the auth gate, by reason."},
		[]string{"reason"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Logins)
	reg.MustRegister(AuthRejected)
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	CheckoutsInitiated *prometheus.CounterVec
	PaymentsProcessed  *prometheus.CounterVec
	WebhookEvents      *prometheus.CounterVec
}

func New() *Metrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "initiations_total",
		Help:      "Total number of checkout initiation attempts.",
	}, []string{"result"})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "payments_processed_total",
		Help:      "Total number of processed payments by resulting status.",
	}, []string{"status"})
	webhooks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "webhook_events_total",
		Help:      "Total number of received gateway webhook events by status.",
	}, []string{"status"})

	prometheus.MustRegister(checkouts, payments, webhooks)
	return &Metrics{
		CheckoutsInitiated: checkouts,
		PaymentsProcessed:  payments,
		WebhookEvents:      webhooks,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

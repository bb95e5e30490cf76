package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payments_created_total",
		Help: "Payment records created in PENDING state.",
	})

	PaymentsFinalized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_finalized_total",
		Help: "Payment records transitioned into a terminal state.",
	}, []string{"status"})

	WebhookDeliveryFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_delivery_failures_total",
		Help: "Lifecycle notifications that could not be delivered.",
	})
)

func init() {
	prometheus.MustRegister(PaymentsCreated, PaymentsFinalized, WebhookDeliveryFailures)
}

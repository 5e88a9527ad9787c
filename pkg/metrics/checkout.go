package metrics

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics counts checkout outcomes.
type CheckoutMetrics struct {
	ordersCreated prometheus.Counter
	failures      prometheus.Counter
	emailFailures prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders successfully placed.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout submissions that did not produce an order.",
	})
	emailFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_email_failures_total",
		Help: "Order notification emails that could not be sent.",
	})
	reg.MustRegister(ordersCreated, failures, emailFailures)
	return &CheckoutMetrics{
		ordersCreated: ordersCreated,
		failures:      failures,
		emailFailures: emailFailures,
	}
}

// IncOrderCreated counts a successfully placed order.
func (m *CheckoutMetrics) IncOrderCreated() {
	if m == nil || m.ordersCreated == nil {
		return
	}
	m.ordersCreated.Inc()
}

// IncFailure counts a failed checkout submission.
func (m *CheckoutMetrics) IncFailure() {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.Inc()
}

// IncEmailFailure counts a notification email that could not be sent.
func (m *CheckoutMetrics) IncEmailFailure() {
	if m == nil || m.emailFailures == nil {
		return
	}
	m.emailFailures.Inc()
}

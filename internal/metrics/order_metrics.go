// Package metrics exposes Prometheus instrumentation for order operations.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds counters for order lifecycle operations and a gauge for
// orders currently awaiting confirmation.
type OrderMetrics struct {
	ordersCreated   prometheus.Counter
	ordersConfirmed prometheus.Counter
	ordersCancelled prometheus.Counter
	paymentFailures prometheus.Counter

	pendingOrders prometheus.Gauge
}

// NewOrderMetrics creates order metrics registered on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersConfirmed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_confirmed_total",
			Help: "Total number of orders confirmed",
		}),
		ordersCancelled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_cancelled_total",
			Help: "Total number of orders cancelled",
		}),
		paymentFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_payment_failures_total",
			Help: "Total number of failed charge attempts during confirmation",
		}),
		pendingOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "ordering_pending_orders",
			Help: "Number of orders currently awaiting confirmation",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated increments the created counter and the pending gauge.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
	m.pendingOrders.Inc()
}

// RecordOrderConfirmed increments the confirmed counter and decrements the pending gauge.
func (m *OrderMetrics) RecordOrderConfirmed() {
	m.ordersConfirmed.Inc()
	m.pendingOrders.Dec()
}

// RecordOrderCancelled increments the cancelled counter.
// wasPending also decrements the pending gauge.
func (m *OrderMetrics) RecordOrderCancelled(wasPending bool) {
	m.ordersCancelled.Inc()
	if wasPending {
		m.pendingOrders.Dec()
	}
}

// RecordPaymentFailure increments the failed charge counter.
func (m *OrderMetrics) RecordPaymentFailure() {
	m.paymentFailures.Inc()
}

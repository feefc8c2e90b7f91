package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderMetrics_RegistersAllCollectors(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	require.NotNil(t, m)
	require.NotNil(t, m.ordersCreated)
	require.NotNil(t, m.ordersConfirmed)
	require.NotNil(t, m.ordersCancelled)
	require.NotNil(t, m.paymentFailures)
	require.NotNil(t, m.pendingOrders)
}

func TestNewOrderMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(registry)
	second := newOrderMetricsWithRegisterer(registry)

	first.RecordOrderCreated()
	assert.Equal(t, float64(1), testutil.ToFloat64(second.ordersCreated))
}

func TestOrderMetrics_RecordLifecycle(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderCreated()
	m.RecordOrderCreated()
	m.RecordOrderConfirmed()
	m.RecordOrderCancelled(true)
	m.RecordPaymentFailure()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ordersConfirmed))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ordersCancelled))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.paymentFailures))
	// 2 created - 1 confirmed - 1 cancelled while pending
	assert.Equal(t, float64(0), testutil.ToFloat64(m.pendingOrders))
}

func TestOrderMetrics_CancelledConfirmedOrderKeepsPendingGauge(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderCreated()
	m.RecordOrderConfirmed()
	m.RecordOrderCancelled(false)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.pendingOrders))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ordersCancelled))
}

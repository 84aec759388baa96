package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ChatMetrics records outcomes of chat webhook relays.
type ChatMetrics struct {
	duration *prometheus.HistogramVec
	relayed  *prometheus.CounterVec
	fallback prometheus.Counter
}

// NewChatMetrics registers the chat relay metrics on the provided registerer.
func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	if reg == nil {
		return &ChatMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chat_relay_duration_seconds",
		Help:    "Duration of chat webhook round trips in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	relayed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_relays_total",
		Help: "Chat webhook relays by outcome.",
	}, []string{"outcome"})
	fallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_fallback_replies_total",
		Help: "Replies served from the fixed fallback message.",
	})
	reg.MustRegister(duration, relayed, fallback)
	return &ChatMetrics{
		duration: duration,
		relayed:  relayed,
		fallback: fallback,
	}
}

// ObserveRelay records one webhook round trip.
func (c *ChatMetrics) ObserveRelay(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	outcome = normalizeLabel(outcome)
	c.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	c.relayed.WithLabelValues(outcome).Inc()
}

// IncFallback counts a reply answered with the fallback message.
func (c *ChatMetrics) IncFallback() {
	if c == nil || c.fallback == nil {
		return
	}
	c.fallback.Inc()
}

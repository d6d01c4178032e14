// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSent counts successfully persisted messages.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "messaging",
		Name:      "messages_sent_total",
		Help:      "Number of messages successfully sent.",
	})

	// ConversationsCreated counts freshly inserted conversation rows.
	ConversationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "messaging",
		Name:      "conversations_created_total",
		Help:      "Number of new conversations created.",
	})

	// ContactCacheHits tracks contact-list cache effectiveness.
	ContactCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "messaging",
		Name:      "contact_cache_requests_total",
		Help:      "Contact list cache lookups by result.",
	}, []string{"result"})

	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

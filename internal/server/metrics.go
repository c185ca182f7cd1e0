package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fplbot_chat_messages_total",
		Help: "Chat messages handled, by routed intent.",
	}, []string{"intent"})

	chatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fplbot_chat_duration_seconds",
		Help:    "Time spent routing and answering one chat message.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeChat(intent string, took time.Duration) {
	chatMessages.WithLabelValues(intent).Inc()
	chatDuration.Observe(took.Seconds())
}

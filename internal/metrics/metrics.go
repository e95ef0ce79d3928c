package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_turns_total",
			Help: "Total number of chat turns by response path",
		},
		[]string{"path"},
	)

	IntentDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_intent_detected_total",
			Help: "Total number of scored utterances per winning intent",
		},
		[]string{"intent"},
	)

	CompletionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_completion_failures_total",
			Help: "Total number of failed external completion calls",
		},
	)

	CompletionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "chatbot_completion_duration_seconds",
			Help: "Duration of external completion calls in seconds",
		},
	)
)

// Response path label values for ChatTurns.
const (
	PathCanned     = "canned"
	PathCompletion = "completion"
	PathFallback   = "fallback"
)

// RegisterActiveSessions exposes the session store's size as a gauge.
func RegisterActiveSessions(count func() float64) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "chatbot_active_sessions",
			Help: "Number of sessions currently tracked by the store",
		},
		count,
	)
}

// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat turn outcomes.
const (
	OutcomeText      = "text"
	OutcomeTool      = "tool"
	OutcomeToolError = "tool_error"
	OutcomeLLMError  = "llm_error"
)

var (
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_manager_chat_turns_total",
			Help: "Total number of chat turns by outcome",
		},
		[]string{"context", "outcome"},
	)

	ToolDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_manager_tool_dispatch_total",
			Help: "Total number of tool dispatches",
		},
		[]string{"tool", "status"}, // status: success, error
	)

	LLMLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_manager_llm_latency_seconds",
			Help:    "Model completion latency in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"status"},
	)

	RateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_manager_chat_rate_limit_hits_total",
			Help: "Total number of chat requests rejected by the rate limiter",
		},
	)
)

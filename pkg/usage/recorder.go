// Package usage records per-request outcomes so operators can see how the
// service is being used. Entries carry counters and flags only; conversation
// text never enters the ledger.
package usage

import (
	"context"
	"time"
)

// Endpoint labels for Entry.Endpoint.
const (
	EndpointFinder = "finder"
	EndpointLisa   = "lisa"
	EndpointHealth = "health"
)

// Status labels for Entry.Status.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Entry is one recorded request outcome.
type Entry struct {
	// Timestamp is when the request finished.
	Timestamp time.Time `json:"timestamp"`

	// Endpoint that served the request: "finder", "lisa", or "health".
	Endpoint string `json:"endpoint"`

	// Model the request was relayed to.
	Model string `json:"model"`

	// Turns counts the turns in the submitted conversation.
	Turns int `json:"turns"`

	// Searched reports whether the reply carried at least one annotation.
	Searched bool `json:"searched"`

	// Annotations counts the annotation records on the reply.
	Annotations int `json:"annotations"`

	// DurationMS is the end-to-end handling time in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Status is "ok" or "error".
	Status string `json:"status"`
}

// Summary aggregates the ledger.
type Summary struct {
	TotalRequests int            `json:"total_requests"`
	ByEndpoint    map[string]int `json:"by_endpoint"`
	Searches      int            `json:"searches"`
	Annotations   int            `json:"annotations"`
	Errors        int            `json:"errors"`
	AvgDurationMS int64          `json:"avg_duration_ms"`
}

// Recorder persists request outcomes.
type Recorder interface {
	// Record appends one entry to the ledger.
	Record(ctx context.Context, entry Entry) error

	// Summarize aggregates everything recorded so far.
	Summarize(ctx context.Context) (*Summary, error)

	// Close releases any resources held by the ledger.
	Close() error
}

package usage

import (
	"context"
	"sync"
)

// MemoryRecorder keeps the ledger in memory. Entries are lost on restart;
// use the SQLite recorder when history should survive.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder creates an empty in-memory ledger.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(ctx context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// Summarize implements Recorder.
func (m *MemoryRecorder) Summarize(ctx context.Context) (*Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := &Summary{
		ByEndpoint: make(map[string]int),
	}

	var totalDuration int64
	for _, entry := range m.entries {
		summary.TotalRequests++
		summary.ByEndpoint[entry.Endpoint]++
		summary.Annotations += entry.Annotations
		if entry.Searched {
			summary.Searches++
		}
		if entry.Status == StatusError {
			summary.Errors++
		}
		totalDuration += entry.DurationMS
	}
	if summary.TotalRequests > 0 {
		summary.AvgDurationMS = totalDuration / int64(summary.TotalRequests)
	}

	return summary, nil
}

// Entries returns every recorded entry, oldest first.
func (m *MemoryRecorder) Entries(ctx context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

// Close implements Recorder.
func (m *MemoryRecorder) Close() error {
	return nil
}

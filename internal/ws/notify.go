package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type ExtractionProgressEvent struct {
	Type      string `json:"type"`
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Failed    int    `json:"failed"`
	Done      bool   `json:"done"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyJobsUpdated is fired after a scrape or import lands new postings.
func NotifyJobsUpdated(source string, count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	source = strings.ToLower(strings.TrimSpace(source))
	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Source:    source,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

// NotifyExtractionProgress reports batch re-extraction progress as it runs.
func NotifyExtractionProgress(processed, total, failed int, done bool) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ExtractionProgressEvent{
		Type:      "extraction_progress",
		Processed: processed,
		Total:     total,
		Failed:    failed,
		Done:      done,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

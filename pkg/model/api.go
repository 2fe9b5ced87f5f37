package model

import "time"

// Response is the envelope every API endpoint wraps its payload in.
// Data carries a Run or endpoint-specific document on success; Error is
// set instead when Status is "error". RequestID ties the response to
// the server's request log.
type Response struct {
	Status     string      `json:"status"`
	RequestID  string      `json:"request_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *APIError   `json:"error"`
}

// Pagination describes the window a run listing covers.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ListOptions selects a page of runs, optionally restricted to a single
// dispatch heuristic.
type ListOptions struct {
	Limit     int
	Offset    int
	Heuristic string
}

// DefaultListOptions returns the window used when the caller passes no
// paging parameters.
func DefaultListOptions() ListOptions {
	return ListOptions{Limit: 25}
}

// Clamp pulls out-of-range paging values back into bounds, capping
// listings at 200 rows.
func (o *ListOptions) Clamp() {
	if o.Limit <= 0 {
		o.Limit = 25
	}
	if o.Limit > 200 {
		o.Limit = 200
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

package httpclient

import (
	"net/http"
	"time"
)

// Response is the outcome of a single request: status, body bytes and
// the wall-clock latency of the call.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Latency    time.Duration
}

// LatencyMillis returns the measured latency in milliseconds.
func (r *Response) LatencyMillis() float64 {
	return float64(r.Latency) / float64(time.Millisecond)
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

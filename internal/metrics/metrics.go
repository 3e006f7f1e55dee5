package metrics

import "time"

// Recorder defines the metric hooks the HTTP layer and provider clients
// report to.
type Recorder interface {
	ObserveRequest(endpoint string, status int, duration time.Duration)
	ObserveProviderCall(provider string, outcome string, duration time.Duration)
	ObserveModelRetry(model string)
}

// NoopRecorder discards all observations. It is the default when no
// Prometheus registry is wired in, mostly in tests.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRequest(string, int, time.Duration)         {}
func (NoopRecorder) ObserveProviderCall(string, string, time.Duration) {}
func (NoopRecorder) ObserveModelRetry(string)                          {}

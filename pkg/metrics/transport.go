package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Transport http.RoundTripper, що рахує запити до основного API
type Transport struct {
	base    http.RoundTripper
	metrics *Metrics
}

// NewTransport обгортає base транспорт метриками. Якщо base == nil,
// використовується http.DefaultTransport.
func NewTransport(m *Metrics, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, metrics: m}
}

// RoundTrip виконує запит і записує метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := req.Method + " " + req.URL.Path
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	t.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.UpstreamRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

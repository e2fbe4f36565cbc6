package metrics

import (
	"net/http"
	"strconv"
	"time"

	"serverless-router/pkg/lambda"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedPath replaces the path label of requests no route matched,
// keeping label cardinality bounded by the route table
const unmatchedPath = "unmatched"

// Collector records router dispatches as Prometheus metrics
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector creates the dispatch collectors and registers them with reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "router_requests_total",
				Help: "Dispatched requests by path, method, status code and outcome.",
			},
			[]string{"path", "method", "code", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "router_request_duration_seconds",
				Help:    "Time spent dispatching a request, fallbacks included.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}

	for _, collector := range []prometheus.Collector{c.requests, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveDispatch implements lambda.Observer
func (c *Collector) ObserveDispatch(req *lambda.Request, resp lambda.Response, outcome lambda.Outcome, elapsed time.Duration) {
	path := req.Path
	if outcome == lambda.OutcomeNotFound {
		path = unmatchedPath
	}

	c.requests.WithLabelValues(path, req.Method, strconv.Itoa(resp.StatusCode), string(outcome)).Inc()
	c.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// Handler returns the /metrics handler for the given gatherer
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"serverless-router/pkg/lambda"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}

	c.ObserveDispatch(&lambda.Request{Path: "/", Method: "GET"}, lambda.Response{StatusCode: 200}, lambda.OutcomeHandled, 3*time.Millisecond)
	c.ObserveDispatch(&lambda.Request{Path: "/", Method: "GET"}, lambda.Response{StatusCode: 200}, lambda.OutcomeHandled, time.Millisecond)
	c.ObserveDispatch(&lambda.Request{Path: "/random-1", Method: "GET"}, lambda.Response{StatusCode: 404}, lambda.OutcomeNotFound, time.Millisecond)
	c.ObserveDispatch(&lambda.Request{Path: "/random-2", Method: "GET"}, lambda.Response{StatusCode: 404}, lambda.OutcomeNotFound, time.Millisecond)

	if got := testutil.ToFloat64(c.requests.WithLabelValues("/", "GET", "200", "handled")); got != 2 {
		t.Errorf("Expected 2 handled requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.requests.WithLabelValues(unmatchedPath, "GET", "404", "not_found")); got != 2 {
		t.Errorf("Expected 2 unmatched requests, got %v", got)
	}
	if got := testutil.CollectAndCount(c.requests); got != 2 {
		t.Errorf("Expected 2 label sets, got %d", got)
	}

	t.Run("DuplicateRegistration", func(t *testing.T) {
		if _, err := NewCollector(reg); err == nil {
			t.Error("Expected error registering collectors twice")
		}
	})

	t.Run("Handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "router_requests_total") {
			t.Error("Expected router_requests_total in exposition")
		}
	})
}

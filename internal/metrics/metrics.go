package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "api_requests_total", Help: "Outbound API requests",
	}, []string{"method", "path", "status"})
	APIDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "acadsync", Name: "api_request_seconds", Help: "Outbound API request latency",
		Buckets: prometheus.DefBuckets,
	})
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "cache_hits_total", Help: "Fresh cache hits",
	}, []string{"entity"})
	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "cache_misses_total", Help: "Cache misses",
	}, []string{"entity"})
	CacheEvictions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "cache_evictions_total", Help: "Expired entries removed by sweep",
	}, []string{"entity"})
	FetchErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "fetch_errors_total", Help: "Entity fetch failures",
	}, []string{"entity"})
	ProfileFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "profile_fallbacks_total",
		Help: "Profiles synthesized from email after a backend failure",
	})
	DroppedItems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acadsync", Name: "dropped_items_total", Help: "List items discarded by mappers",
	}, []string{"entity"})
)

func init() {
	prometheus.MustRegister(APIRequests, APIDuration, CacheHits, CacheMisses,
		CacheEvictions, FetchErrors, ProfileFallbacks, DroppedItems)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveAPIRequest(method, path string, status int, d time.Duration) {
	APIRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIDuration.Observe(d.Seconds())
}

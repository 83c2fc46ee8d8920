package app

import (
	"context"
	"net/http"
	"time"

	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/metrics"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP serves the operational surface: healthz reports backend
// reachability, /metrics serves prometheus.
func StartHTTP(ctx context.Context, addr string, client *httpclient.Client) *HTTPServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			http.Error(w, "backend not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe() // closed via Shutdown below
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}

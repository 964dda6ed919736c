package metrics_server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogging-service/internal/logger"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own
// listener, separate from the application server.
type MetricsServer struct {
	address string
	port    int
	log     *logger.Logger
	server  *http.Server
}

func NewMetricsServer(address string, port int, log *logger.Logger) *MetricsServer {
	return &MetricsServer{
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *MetricsServer) Run() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.log.Info("Starting metrics server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

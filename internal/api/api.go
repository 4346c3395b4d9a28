package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katiamach/xray-contours-api/internal/config"
	"github.com/katiamach/xray-contours-api/internal/logger"
	"github.com/katiamach/xray-contours-api/internal/metrics"
	"github.com/katiamach/xray-contours-api/internal/repository"
	"github.com/katiamach/xray-contours-api/internal/service"
	"github.com/katiamach/xray-contours-api/internal/transport/rest/handler"
)

// RunAPI runs contours service API until ctx is done.
func RunAPI(ctx context.Context, cfg *config.Config) error {
	m := metrics.New()
	repo := repository.New(cfg.StoreDir, m)
	service := service.New(repo)
	server := handler.NewContourServer(service)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(server, m, cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting contours service api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down contours service api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewRouter registers contours routes with CORS, access log and metrics middleware.
func NewRouter(server *handler.ContourServer, m *metrics.Metrics, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(instrument(m))

	r.HandleFunc("/", server.HelloHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", server.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/temperatures", server.TemperaturesHandler).Methods(http.MethodGet)
	r.HandleFunc("/contours_by_temp", server.ContoursByTempHandler).Methods(http.MethodGet)
	r.HandleFunc("/contours", server.ContoursHandler).Methods(http.MethodGet)
	r.HandleFunc("/contours_summary", server.ContoursSummaryHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	options := setupCorsOptions(origins)
	return handlers.CORS(options...)(r)
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hangar/internal/hangar"
	"hangar/internal/logging"
	"hangar/internal/surface"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
}

func NewServer(port, serviceName string, telemetry *hangar.TelemetryProvider, scale surface.Scale) *Server {
	handler := NewHandler(telemetry, serviceName, scale)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(handler, telemetry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
	}
}

func NewRouter(handler *Handler, telemetry *hangar.TelemetryProvider) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware)
	r.Use(RequestIDMiddleware)
	r.Use(TracingMiddleware(telemetry.Tracer()))
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)

	r.Get("/health", handler.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/hangar", func(r chi.Router) {
		r.Post("/", handler.CreateHangar)
		r.Get("/", handler.GetStatus)
		r.Post("/vehicles", handler.ParkVehicle)
		r.Get("/vehicles/{index}", handler.GetVehicle)
		r.Delete("/vehicles/{index}", handler.RemoveVehicle)
		r.Post("/sort", handler.SortVehicles)
		r.Get("/render", handler.Render)
		r.Get("/draw", handler.DrawOps)
	})

	return r
}

func (s *Server) Start() error {
	logging.Infof(context.Background(), "Starting HTTP server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info(ctx, "Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) GetAddress() string {
	return fmt.Sprintf("http://localhost%s", s.httpServer.Addr)
}

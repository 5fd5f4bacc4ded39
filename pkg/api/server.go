// Package api mavcodec REST API
//
// @title           mavcodec REST API
// @version         1.0.0
// @description     Pack, validate and decode MAVLink frames over HTTP.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/mavcodec/pkg/codec"
)

const shutdownTimeout = 5 * time.Second

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>mavcodec API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, dialect *codec.Dialect, config ServerConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	addr := net.JoinHostPort(config.Bind, strconv.Itoa(config.Port))
	SwaggerInfo.Host = addr

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := NewMetrics(reg)

	server := NewServer(dialect, config, metrics, logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting mavcodec REST API server", "addr", addr, "dialect", dialect.Name(), "messages", dialect.Len())
		logger.Info("metrics available", "url", fmt.Sprintf("http://%s/metrics", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// NewRouter builds the HTTP routes for s. gatherer backs the /metrics
// endpoint.
func NewRouter(s *Server, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	metrics := s.metrics
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Schema inspection
		r.Get("/messages", metrics.InstrumentHandler("GET", "/api/v1/messages", s.handleListMessages))
		r.Get("/messages/{name}", metrics.InstrumentHandler("GET", "/api/v1/messages/{name}", s.handleGetMessage))

		// Outbound channels
		r.Post("/channels", metrics.InstrumentHandler("POST", "/api/v1/channels", s.handleCreateChannel))
		r.Get("/channels/{id}", metrics.InstrumentHandler("GET", "/api/v1/channels/{id}", s.handleGetChannel))
		r.Delete("/channels/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/channels/{id}", s.handleDeleteChannel))
		r.Post("/channels/{id}/pack", metrics.InstrumentHandler("POST", "/api/v1/channels/{id}/pack", s.handlePack))

		// Inbound frames
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", s.handleDecode))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", s.handleSwagger)

	return r
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))

	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			s.logger.Error("failed to generate swagger doc", "error", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))

	case "/swagger/swagger.yaml":
		doc, err := swaggerYAML()
		if err != nil {
			s.logger.Error("failed to generate swagger doc", "error", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(doc)

	default:
		http.NotFound(w, r)
	}
}

// swaggerYAML re-encodes the JSON document; YAML is a superset of JSON so
// the YAML decoder reads it directly.
func swaggerYAML() ([]byte, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}
	var tree yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &tree); err != nil {
		return nil, err
	}
	clearStyle(&tree)
	return yaml.Marshal(&tree)
}

// clearStyle drops the flow style inherited from the JSON source so the
// output is block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

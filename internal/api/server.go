package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/registry"
	"github.com/agile-developer/kafka-proxy/internal/topics"
)

// ConnectionRegistry is the part of the registry served over HTTP
type ConnectionRegistry interface {
	CreateOrGetConnection(ctx context.Context, address string) (registry.ClusterConnection, error)
	CloseConnection(address string) bool
	Entries() map[string]registry.Entry
}

var _ ConnectionRegistry = (*registry.Registry)(nil)

// TopicOperations is the part of the topic service served over HTTP
type TopicOperations interface {
	ListForCluster(ctx context.Context, address string) ([]client.TopicInfo, error)
	LookupTopic(ctx context.Context, address string, name string) (topics.TopicState, error)
	EnsureTopic(ctx context.Context, address string, name string) (string, bool, error)
	ConsumeRecords(ctx context.Context, address string, topic string) ([]string, error)
}

var _ TopicOperations = (*topics.Service)(nil)

type Server struct {
	config      *Config
	router      *mux.Router
	handler     http.Handler
	chain       alice.Chain
	logger      *zerolog.Logger
	connections ConnectionRegistry
	topics      TopicOperations
	healthy     int32
	ready       int32
}

func NewServer(config *Config, connections ConnectionRegistry, topicOps TopicOperations, logger *zerolog.Logger) (*Server, error) {
	srv := &Server{
		config:      config,
		router:      mux.NewRouter(),
		chain:       alice.New(),
		logger:      logger,
		connections: connections,
		topics:      topicOps,
	}
	srv.registerHandlers()
	srv.registerMiddlewares()

	return srv, nil
}

func (s *Server) registerHandlers() {
	s.router.Handle("/metrics", promhttp.Handler())
	s.router.HandleFunc("/healthz", s.healthzHandler).Methods("GET")
	s.router.HandleFunc("/readyz", s.readyzHandler).Methods("GET")

	api := s.router.PathPrefix("/kafka-proxy").Subrouter()
	api.HandleFunc("/cluster-connections", s.createConnectionHandler).Methods("POST")
	api.HandleFunc("/cluster-connections", s.listConnectionsHandler).Methods("GET")
	api.HandleFunc("/cluster-connections/close", s.closeConnectionHandler).Methods("POST")
	api.HandleFunc("/topics", s.listTopicsHandler).Methods("GET")
	api.HandleFunc("/topics", s.createTopicHandler).Methods("POST")
	api.HandleFunc("/topics/records", s.consumeRecordsHandler).Methods("GET")
}

func (s *Server) registerMiddlewares() {
	logger := s.logger.With().Logger()
	chain := s.chain.Append(hlog.NewHandler(logger))
	chain = chain.Append(hlog.RequestIDHandler("req_id", "Request-Id"))

	// Install some provided extra handler to set some request's context fields.
	// Thanks to that handler, all our logs will come with some prepopulated fields.
	chain = chain.Append(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		if r.URL.Path == "/metrics" {
			return
		}
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("")
	}))
	s.handler = chain.Then(s.router)
}

// Handler returns the router wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() (*http.Server, *int32, *int32) {
	go s.startMetricsServer()

	// create the http server
	srv := s.startServer()

	// signal Kubernetes the server is ready to receive traffic
	atomic.StoreInt32(&s.healthy, 1)
	atomic.StoreInt32(&s.ready, 1)

	return srv, &s.healthy, &s.ready
}

func (s *Server) startServer() *http.Server {
	srv := &http.Server{
		Addr:         s.config.Host + ":" + s.config.Port,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  30 * time.Second,
		IdleTimeout:  2 * 30 * time.Second,
		Handler:      s.handler,
	}

	// start the server in the background
	go func() {
		s.logger.Info().
			Str("addr", srv.Addr).
			Msg("Starting HTTP Server")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Fatal().
				Err(err).
				Msg("HTTP server crashed")
		}
	}()

	// return the server and routine
	return srv
}

func (s *Server) startMetricsServer() {
	if s.config.MetricsPort == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			s.logger.Err(err).Msg("Write error")
		}
	})

	srv := &http.Server{
		Addr:    s.config.Host + ":" + s.config.MetricsPort,
		Handler: mux,
	}

	err := srv.ListenAndServe()
	if err != nil {
		s.logger.Err(err).Msg("Metrics server error")
	}
}

func (s *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	if atomic.LoadInt32(&s.healthy) == 1 {
		s.JSONResponse(w, r, map[string]string{"status": "OK"})
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
}

func (s *Server) readyzHandler(w http.ResponseWriter, r *http.Request) {
	if atomic.LoadInt32(&s.ready) == 1 {
		s.JSONResponse(w, r, map[string]string{"status": "OK"})
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
}

func (s *Server) JSONResponse(w http.ResponseWriter, r *http.Request, result interface{}) {
	s.JSONResponseCode(w, r, result, http.StatusOK)
}

func (s *Server) JSONResponseCode(w http.ResponseWriter, r *http.Request, result interface{}, responseCode int) {
	body, err := json.Marshal(result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		hlog.FromRequest(r).Error().Err(err).Msg("JSON marshal failed")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(responseCode)
	_, err = w.Write(prettyJSON(body))
	if err != nil {
		hlog.FromRequest(r).Err(err).Msg("Write error")
	}
}

func prettyJSON(b []byte) []byte {
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ") // nolint: errcheck
	return out.Bytes()
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/topics"
)

type connectionRequest struct {
	BootstrapServer string `json:"bootstrapServer"`
}

type topicRequest struct {
	BootstrapServer string `json:"bootstrapServer"`
	Topic           string `json:"topic"`
}

type activeConnection struct {
	BootstrapServer string `json:"bootstrapServer"`
	ID              string `json:"id"`
	ClusterID       string `json:"clusterId"`
}

type createdTopic struct {
	ID              string `json:"id"`
	Topic           string `json:"topic"`
	BootstrapServer string `json:"bootstrapServer"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func validateBootstrapServer(bootstrapServer string) error {
	if strings.TrimSpace(bootstrapServer) == "" {
		return fmt.Errorf("bootstrap-server URL: %q is blank", bootstrapServer)
	}
	if _, err := client.ParseBootstrapServers(bootstrapServer); err != nil {
		return fmt.Errorf("bootstrap-server: %s is not a valid URL: %w", bootstrapServer, err)
	}
	return nil
}

func validateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return errors.New("topic name is blank")
	}
	return nil
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error, responseCode int) {
	hlog.FromRequest(r).Warn().Err(err).Int("status", responseCode).Msg("Request failed")
	s.JSONResponseCode(w, r, errorResponse{Error: err.Error()}, responseCode)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) createConnectionHandler(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validateBootstrapServer(req.BootstrapServer); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	conn, err := s.connections.CreateOrGetConnection(r.Context(), req.BootstrapServer)
	if err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	s.JSONResponse(w, r, conn)
}

func (s *Server) listConnectionsHandler(w http.ResponseWriter, r *http.Request) {
	entries := s.connections.Entries()

	conns := make([]activeConnection, 0, len(entries))
	for address, entry := range entries {
		conns = append(conns, activeConnection{
			BootstrapServer: address,
			ID:              entry.Connection.ID,
			ClusterID:       entry.Connection.ClusterID,
		})
	}
	sort.Slice(conns, func(i, j int) bool {
		return conns[i].BootstrapServer < conns[j].BootstrapServer
	})

	s.JSONResponse(w, r, conns)
}

func (s *Server) closeConnectionHandler(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validateBootstrapServer(req.BootstrapServer); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	if !s.connections.CloseConnection(req.BootstrapServer) {
		err := fmt.Errorf("cluster: %s does not have an active connection, nothing to close", req.BootstrapServer)
		s.errorResponse(w, r, err, http.StatusNotFound)
		return
	}

	s.JSONResponse(w, r, messageResponse{
		Message: fmt.Sprintf("Connection to cluster: %s closed successfully", req.BootstrapServer),
	})
}

func (s *Server) listTopicsHandler(w http.ResponseWriter, r *http.Request) {
	bootstrapServer := r.URL.Query().Get("bootstrapServer")
	if err := validateBootstrapServer(bootstrapServer); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	infos, err := s.topics.ListForCluster(r.Context(), bootstrapServer)
	switch {
	case errors.Is(err, topics.ErrNoTopics):
		s.errorResponse(w, r, err, http.StatusNotFound)
		return
	case err != nil:
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	s.JSONResponse(w, r, infos)
}

func (s *Server) createTopicHandler(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validateBootstrapServer(req.BootstrapServer); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}
	if err := validateTopic(req.Topic); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	id, created, err := s.topics.EnsureTopic(r.Context(), req.BootstrapServer, req.Topic)
	if err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}
	if !created {
		s.JSONResponse(w, r, messageResponse{
			Message: fmt.Sprintf("Topic %s already exists for cluster: %s", req.Topic, req.BootstrapServer),
		})
		return
	}

	s.JSONResponse(w, r, createdTopic{
		ID:              id,
		Topic:           req.Topic,
		BootstrapServer: req.BootstrapServer,
	})
}

func (s *Server) consumeRecordsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bootstrapServer, topic := query.Get("bootstrapServer"), query.Get("topic")
	if err := validateBootstrapServer(bootstrapServer); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}
	if err := validateTopic(topic); err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	state, err := s.topics.LookupTopic(r.Context(), bootstrapServer, topic)
	if err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}
	if state == topics.TopicAbsent {
		err = fmt.Errorf("cluster: %s does not have a topic named: %s", bootstrapServer, topic)
		s.errorResponse(w, r, err, http.StatusNotFound)
		return
	}

	values, err := s.topics.ConsumeRecords(r.Context(), bootstrapServer, topic)
	if err != nil {
		s.errorResponse(w, r, err, http.StatusBadRequest)
		return
	}

	s.JSONResponse(w, r, values)
}

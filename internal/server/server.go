// Package server exposes the chat entry point over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ansinha/fplbot/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

type Server struct {
	router *chat.Router
	mux    *http.ServeMux
}

func New(router *chat.Router) *Server {
	s := &Server{router: router, mux: http.NewServeMux()}
	s.mux.HandleFunc("/chat", s.handleChat)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requestID := uuid.NewString()
	started := time.Now()

	resp := s.router.Handle(req.Message)

	observeChat(resp.Intent, time.Since(started))
	slog.Info("Handled chat message",
		"request_id", requestID,
		"intent", resp.Intent,
		"kind", resp.Kind,
		"took", time.Since(started))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error encoding chat response", "request_id", requestID, "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

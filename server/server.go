package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gef_pif_generator/config"
	"gef_pif_generator/generator"
	"gef_pif_generator/pipeline"
)

// Server exposes the drafting pipeline over a small JSON API:
// POST /api/runs runs a full generate+verify+persist cycle for a country,
// GET /api/runs/{country} returns the persisted Run Output.
type Server struct {
	agent *generator.Agent
	store *pipeline.Store
	cfg   config.Config
	log   *zap.SugaredLogger
}

func New(agent *generator.Agent, store *pipeline.Store, cfg config.Config, log *zap.SugaredLogger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if store == nil {
		return nil, errors.New("run store required")
	}
	return &Server{agent: agent, store: store, cfg: cfg, log: log}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/runs", s.handleRunCreate)
	mux.HandleFunc("/api/runs/", s.handleRunByCountry)
	return s.logMiddleware(mux)
}

type runCreateReq struct {
	Country string `json:"country"`
}

func (s *Server) handleRunCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req runCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Country) == "" {
		http.Error(w, "country is required", http.StatusBadRequest)
		return
	}

	p := pipeline.New(s.agent, s.store, s.cfg, s.log)
	out, err := p.Run(r.Context(), strings.TrimSpace(req.Country))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, out)
}

func (s *Server) handleRunByCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	country := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	if country == "" {
		http.NotFound(w, r)
		return
	}
	out, err := s.store.Load(country, generator.SectionKeys())
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Infow("http request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keyword-engine/backend/internal/engine"
	"github.com/keyword-engine/backend/internal/executor"
	"github.com/keyword-engine/backend/internal/loader"
	"github.com/keyword-engine/backend/internal/search"
)

type Server struct {
	Engine *engine.Engine
	Loader *loader.Loader
	Pool   *executor.Pool
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, ldr *loader.Loader, pool *executor.Pool, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Loader: ldr,
		Pool:   pool,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	s.Router.HandleFunc("/api/v1/analyze/url", s.handleAnalyzeURL)
	s.Router.HandleFunc("/api/v1/keywords", s.handleKeywords)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Requests / Responses

type AnalyzeRequest struct {
	Text         string `json:"text"`
	URL          string `json:"url"`
	TopKeywords  int    `json:"top_keywords"`
	TopSentences int    `json:"top_sentences"`
}

type AnalyzeResponse struct {
	Ranked  []search.RankedKeyword          `json:"ranked"`
	Details map[string]search.KeywordDetail `json:"details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

type StatusResponse struct {
	Uptime           string `json:"uptime"`
	MatchesCompleted int64  `json:"matches_completed"`
	MatchesFailed    int64  `json:"matches_failed"`
	QueueDepth       int    `json:"queue_depth"`
	QueueCapacity    int    `json:"queue_capacity"`
}

// Handlers

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	s.runMatch(w, r, req.Text, req.options())
}

func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if req.URL == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "URL is required"})
		return
	}

	text, err := s.Loader.FetchURL(r.Context(), req.URL)
	if err != nil {
		s.Logger.WithError(err).WithField("url", req.URL).Warn("Failed to fetch document")
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	s.runMatch(w, r, text, req.options())
}

func (s *Server) runMatch(w http.ResponseWriter, r *http.Request, text string, opts search.Options) {
	future, err := s.Engine.MatchDetailedAsync(text, opts)
	if err != nil {
		jsonResponse(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := future.Await(r.Context())
	if err != nil {
		if errors.Is(err, search.ErrEmptyInput) {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Ranked:  result.Ranked,
		Details: result.Details,
	})
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	keywords := s.Engine.Matcher.Keywords()
	jsonResponse(w, http.StatusOK, KeywordsResponse{
		Keywords: keywords,
		Count:    len(keywords),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats()

	jsonResponse(w, http.StatusOK, StatusResponse{
		Uptime:           time.Since(stats.StartTime).String(),
		MatchesCompleted: stats.MatchesCompleted,
		MatchesFailed:    stats.MatchesFailed,
		QueueDepth:       s.Pool.QueueDepth(),
		QueueCapacity:    s.Pool.QueueCapacity(),
	})
}

func (r AnalyzeRequest) options() search.Options {
	return search.Options{
		TopKeywords:  r.TopKeywords,
		TopSentences: r.TopSentences,
	}
}

func jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Package server exposes the dialog engine over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/edudesk/faqbot/internal/dialog"
	"github.com/edudesk/faqbot/internal/metrics"
	"github.com/edudesk/faqbot/internal/models"
	"github.com/edudesk/faqbot/internal/store"
)

// Server handles chat traffic against a shared engine and context store.
type Server struct {
	engine *dialog.Engine
	store  store.ContextStore
	stats  *metrics.Collector
	logger *slog.Logger
}

// New creates a Server. stats may be nil.
func New(engine *dialog.Engine, contexts store.ContextStore, stats *metrics.Collector, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, store: contexts, stats: stats, logger: logger}
}

// Handler returns the routed HTTP handler with request logging attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("GET /stats", s.handleStats)
	return LoggingMiddleware(s.logger)(mux)
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// chatResponse mirrors TurnResult minus the context, which stays
// server-side in the store.
type chatResponse struct {
	ConversationID string              `json:"conversation_id"`
	Reply          string              `json:"reply"`
	Intent         string              `json:"intent,omitempty"`
	Entities       models.EntitySet    `json:"entities"`
	Confidence     float64             `json:"confidence"`
	FaqID          *int                `json:"faq_id,omitempty"`
	FallbackType   models.FallbackType `json:"fallback_type,omitempty"`
	Suggestions    []models.Suggestion `json:"suggestions,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := s.runTurn(r, req)
	if err != nil {
		s.logger.Error("turn failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// runTurn executes one turn against the store: load, handle, save.
// A fresh conversation ID is minted when the caller sends none.
func (s *Server) runTurn(r *http.Request, req chatRequest) (chatResponse, error) {
	ctx := r.Context()
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	convCtx, ok, err := s.store.Load(ctx, conversationID)
	if err != nil {
		// Degrade to a fresh context rather than failing the turn.
		s.logger.Warn("context load failed, starting fresh", "conversation", conversationID, "error", err)
	}
	if !ok {
		convCtx = s.engine.NewContext()
	}

	before := convCtx.TurnCount
	result := s.engine.HandleTurn(req.Message, convCtx)

	// Blank input leaves the context untouched; only persist real turns.
	if result.Context.TurnCount != before {
		if err := s.store.Save(ctx, conversationID, result.Context); err != nil {
			return chatResponse{}, err
		}
	}

	return chatResponse{
		ConversationID: conversationID,
		Reply:          result.Reply,
		Intent:         result.Intent,
		Entities:       result.Entities,
		Confidence:     result.Confidence,
		FaqID:          result.FaqID,
		FallbackType:   result.FallbackType,
		Suggestions:    result.Suggestions,
	}, nil
}

type resetRequest struct {
	ConversationID string `json:"conversation_id"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ConversationID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.store.Reset(r.Context(), req.ConversationID); err != nil {
		s.logger.Error("reset failed", "conversation", req.ConversationID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

package chat

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanjeevani-app/backend/internal/moderation"
	chatService "github.com/sanjeevani-app/backend/internal/service/chat"
)

// Handler serves the companion chat endpoints.
type Handler struct {
	chatSvc   *chatService.Service
	aiEnabled bool
}

// New creates the chat handler. aiEnabled reports whether a real model backs
// the responder, for the health endpoint.
func New(chatSvc *chatService.Service, aiEnabled bool) *Handler {
	return &Handler{chatSvc: chatSvc, aiEnabled: aiEnabled}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
	r.Get("/chat/health", h.handleHealth)
}

type turnResponse struct {
	Response  string                     `json:"response"`
	Crisis    bool                       `json:"crisis"`
	Emergency bool                       `json:"emergency"`
	Degraded  bool                       `json:"degraded,omitempty"`
	Resources *moderation.ResourceBundle `json:"resources,omitempty"`
	Timestamp string                     `json:"timestamp"`
}

// handleTurn runs one chat turn. The turn itself never hard-fails: responder
// trouble surfaces as a degraded flag with fallback copy, not an error.
func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInvalidMessage(w)
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		respondInvalidMessage(w)
		return
	}

	result := h.chatSvc.HandleTurn(r.Context(), payload.Message)

	respondJSON(w, http.StatusOK, turnResponse{
		Response:  result.Response,
		Crisis:    result.Crisis,
		Emergency: result.Emergency,
		Degraded:  result.Degraded,
		Resources: result.Resources,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "chat",
		"aiEnabled": h.aiEnabled,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondInvalidMessage(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, map[string]string{
		"error":   "Invalid message",
		"message": "Please provide a valid message",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package community

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanjeevani-app/backend/internal/model/post"
	communityService "github.com/sanjeevani-app/backend/internal/service/community"
	"github.com/sanjeevani-app/backend/pkg/utils"
)

// Handler serves the community wall endpoints.
type Handler struct {
	wallSvc *communityService.Service
}

// New creates the community handler.
func New(wallSvc *communityService.Service) *Handler {
	return &Handler{wallSvc: wallSvc}
}

// RegisterRoutes mounts the wall routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/community", h.handleList)
	r.Post("/community", h.handleCreate)
	r.Get("/community/stats", h.handleStats)
	r.Get("/community/health", h.handleHealth)
	r.Post("/community/cleanup", h.handleCleanup)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	posts := h.wallSvc.List(r.Context())
	if posts == nil {
		posts = []post.Post{}
	}

	message := fmt.Sprintf("%d anonymous posts", len(posts))
	if len(posts) == 0 {
		message = "No posts yet - be the first to share!"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"posts":   posts,
		"count":   len(posts),
		"message": message,
	})
}

// handleCreate maps the orchestrator's error vocabulary onto HTTP statuses:
// validation and gate rejection are 400 with distinct bodies, a down store is
// 503, a failed write is 500.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
		Mood    string `json:"mood"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Invalid message",
			"message": "Please provide a message to share",
		})
		return
	}

	created, err := h.wallSvc.Submit(r.Context(), payload.Message, payload.Mood)
	if err != nil {
		h.respondSubmitError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":        true,
		"message":        "Post shared successfully",
		"post":           created,
		"expiresInHours": 1,
	})
}

func (h *Handler) respondSubmitError(w http.ResponseWriter, err error) {
	var rejected *communityService.RejectedError
	switch {
	case errors.Is(err, communityService.ErrEmptyMessage):
		utils.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Invalid message",
			"message": "Please provide a message to share",
		})
	case errors.Is(err, communityService.ErrUnavailable):
		utils.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "Service unavailable",
			"message": "Community wall temporarily unavailable",
		})
	case errors.As(err, &rejected):
		utils.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"error":      "Content not allowed",
			"reason":     rejected.Decision.Reason,
			"suggestion": rejected.Decision.Suggestion,
		})
	default:
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to save post",
			"message": "Unable to save your post right now",
		})
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.wallSvc.Stats(r.Context())

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"stats": map[string]interface{}{
			"totalPosts":       stats.TotalPosts,
			"moodDistribution": stats.MoodDistribution,
			"timeDistribution": stats.TimeDistribution,
			"storeConnected":   h.wallSvc.Available(r.Context()),
			"lastUpdated":      time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.wallSvc.Available(r.Context())
	postsCount := 0
	if connected {
		postsCount = len(h.wallSvc.List(r.Context()))
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"storeConnected": connected,
		"postsCount":     postsCount,
		"features": map[string]bool{
			"createPost": connected,
			"getPosts":   connected,
			"autoExpire": connected,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	cleaned := h.wallSvc.Cleanup(r.Context())

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Cleanup completed",
		"cleaned":   cleaned,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

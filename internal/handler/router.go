package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/sanjeevani-app/backend/internal/handler/chat"
	communityHandler "github.com/sanjeevani-app/backend/internal/handler/community"
	"github.com/sanjeevani-app/backend/internal/middleware"
	chatService "github.com/sanjeevani-app/backend/internal/service/chat"
	communityService "github.com/sanjeevani-app/backend/internal/service/community"
	"github.com/sanjeevani-app/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, wallSvc *communityService.Service, aiEnabled bool, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(allowedOrigin))
	r.Use(middleware.Privacy)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(chatSvc, aiEnabled).RegisterRoutes(api)
		communityHandler.New(wallSvc).RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{
				"status":    "healthy",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"privacy":   "no-data-stored",
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Sanjeevani Backend - Anonymous Mental Health Companion",
			"version": "1.0.0",
			"privacy": "This API stores no personal data and respects your anonymity",
			"endpoints": map[string]string{
				"chat":      "/api/chat",
				"community": "/api/community",
				"health":    "/api/health",
			},
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusNotFound, map[string]string{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})

	return r
}

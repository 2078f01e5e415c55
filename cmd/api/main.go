package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sanjeevani-app/backend/internal/analysis/crisis"
	"github.com/sanjeevani-app/backend/internal/config"
	"github.com/sanjeevani-app/backend/internal/handler"
	"github.com/sanjeevani-app/backend/internal/moderation"
	"github.com/sanjeevani-app/backend/internal/service/ai"
	chatservice "github.com/sanjeevani-app/backend/internal/service/chat"
	communityservice "github.com/sanjeevani-app/backend/internal/service/community"
	"github.com/sanjeevani-app/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	detector := crisis.NewKeywordDetector()
	gate := moderation.NewGate(detector)

	var responder chatservice.Responder
	aiEnabled := false
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with canned companion replies")
		} else {
			responder = aiSvc
			aiEnabled = true
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("no model credentials configured - using canned companion replies")
	}
	if responder == nil {
		responder = ai.NewStaticResponder()
	}

	store := storage.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if store.Available(ctx) {
		log.Println("community wall ready")
	} else {
		log.Println("warning: Redis unreachable - community wall features disabled until it returns")
	}

	chatSvc := chatservice.NewService(detector, responder, cfg.Chat.ResponderTimeout)
	wallSvc := communityservice.NewService(gate, store)

	router := handler.NewRouter(chatSvc, wallSvc, aiEnabled, cfg.CORS.AllowedOrigin)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Sanjeevani backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

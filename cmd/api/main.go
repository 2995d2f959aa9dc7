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

	"github.com/taskmind/backend/internal/analysis/sentiment"
	"github.com/taskmind/backend/internal/config"
	"github.com/taskmind/backend/internal/embedding"
	"github.com/taskmind/backend/internal/handler"
	"github.com/taskmind/backend/internal/model/intent"
	"github.com/taskmind/backend/internal/model/profile"
	nlpservice "github.com/taskmind/backend/internal/service/nlp"
	suggestservice "github.com/taskmind/backend/internal/service/suggest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	model := loadEmbeddingModel(ctx, cfg)

	intents, err := intent.Load(cfg.NLP.IntentsPath)
	if err != nil {
		log.Fatalf("failed to load intents: %v", err)
	}
	log.Printf("loaded %d intent definitions", len(intents))

	analyzer := sentiment.NewAnalyzer(ctx, model)
	profiles := profile.NewMemoryStore()

	nlpSvc := nlpservice.NewService(model, analyzer, intents, nil, nil)
	engine := suggestservice.NewEngine(profiles, nil, nil)

	router := handler.NewRouter(nlpSvc, engine, profiles, handler.Capabilities{
		ModelAvailable: model.Available(),
		IntentCount:    len(intents),
	})

	startServer(ctx, cfg.Server, router)
}

// loadEmbeddingModel prefers the remote Ark embedder, falls back to the local
// vector file, and finally to the null model so every operation degrades to
// its documented default instead of failing.
func loadEmbeddingModel(ctx context.Context, cfg *config.Config) embedding.Model {
	if cfg.AI.Enabled() {
		embedder, err := cfg.AI.NewEmbedder(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize ark embedder: %v", err)
		} else {
			log.Println("embedding model: ark remote embedder")
			return embedding.NewRemoteModel(embedder)
		}
	}

	if cfg.NLP.VectorsPath != "" {
		model, err := embedding.LoadVectors(cfg.NLP.VectorsPath)
		if err != nil {
			log.Printf("warning: failed to load word vectors: %v", err)
		} else {
			log.Printf("embedding model: %d word vectors from %s", model.Size(), cfg.NLP.VectorsPath)
			return model
		}
	}

	log.Println("no embedding model configured, text analysis will return neutral defaults")
	return embedding.Null{}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("TaskMind backend listening on %s", serverCfg.Addr)
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

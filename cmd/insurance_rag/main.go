package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insurance_rag/internal/app"
	"insurance_rag/internal/chunker"
	"insurance_rag/internal/conditions"
	"insurance_rag/internal/config"
	"insurance_rag/internal/document"
	"insurance_rag/internal/insurance"
	"insurance_rag/internal/llm"
	"insurance_rag/internal/storage"
	"insurance_rag/internal/tools"

	"github.com/joho/godotenv"
)

func main() {
	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Хэндл базы создаётся один раз, соединение ленивое
	db := storage.New(cfg.Mongo)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
	}()

	store := document.NewStore()
	factory := chunker.NewFactory(chunker.Config{
		MaxChunkSize:  cfg.ChunkSize,
		OverlapTokens: cfg.OverlapTokens,
	})

	conditionsCatalog := conditions.NewCatalog(db, store, factory)
	policyCatalog := insurance.NewCatalog(db, conditionsCatalog)

	// Набор инструментов фиксируется на старте
	registry := tools.NewRegistry()
	tools.RegisterDocumentTools(registry, conditionsCatalog, store, cfg.TopK)
	tools.RegisterPolicyTools(registry, policyCatalog, cfg.Mongo.Database, cfg.Mongo.Policies)

	a := app.New(&cfg, llm.New(cfg.LlmMain), registry)

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}

package app

import (
	"context"

	"insurance_rag/internal/config"
	"insurance_rag/internal/llm"
	"insurance_rag/internal/tools"
)

// ChatClient - абстракция над провайдером модели
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, tools []llm.Tool) (llm.Message, error)
}

// App держит состояние одной диалоговой сессии: историю сообщений
// и реестр инструментов. История живёт только в памяти процесса.
type App struct {
	cfg      *config.Config
	llm      ChatClient
	registry *tools.Registry
	history  []llm.Message
}

func New(cfg *config.Config, client ChatClient, registry *tools.Registry) *App {
	return &App{
		cfg:      cfg,
		llm:      client,
		registry: registry,
	}
}

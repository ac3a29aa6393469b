package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"insurance_rag/internal/llm"
)

// Handler выполняет инструмент и всегда возвращает строку для модели.
// Любой отказ - тоже строка: описание проблемы идёт в транскрипт
// как обычный результат инструмента.
type Handler func(ctx context.Context, args json.RawMessage) string

// Tool - именованная операция, доступная модели. Описание и схема
// параметров нужны модели для выбора инструмента, диспетчеризация
// идёт по имени через типизированный обработчик.
type Tool struct {
	Name        string
	Description string
	Parameters  llm.Schema
	Run         Handler
}

// Registry - закрытый набор инструментов. Регистрация статическая,
// один раз на старте; во время сессии набор не меняется.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register добавляет инструмент. Повторная регистрация имени -
// ошибка программиста, поэтому паника на старте.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate registration of %q", t.Name))
	}
	r.order = append(r.order, t.Name)
	r.tools[t.Name] = t
}

// Specs возвращает описания инструментов для модели в порядке регистрации
func (r *Registry) Specs() []llm.Tool {
	specs := make([]llm.Tool, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		specs = append(specs, llm.Tool{
			Type: "function",
			Function: llm.Function{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return specs
}

// Dispatch выполняет инструмент по имени. За границу реестра не уходит
// ни ошибка, ни паника - всё превращается в строку результата.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (result string) {
	t, ok := r.tools[name]
	if !ok {
		return fmt.Sprintf("Error: unknown tool '%s'", name)
	}

	defer func() {
		if p := recover(); p != nil {
			result = fmt.Sprintf("Error: tool '%s' failed: %v", name, p)
		}
	}()

	return t.Run(ctx, args)
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"insurance_rag/internal/llm"
)

// HandleTurn прогоняет один ход пользователя: реплика уходит в историю,
// модель отвечает либо текстом, либо запросами инструментов. Результаты
// инструментов возвращаются модели, пока она не даст финальный ответ.
// Количество раундов ограничено, чтобы цикл гарантированно завершился.
func (a *App) HandleTurn(ctx context.Context, input string) (string, error) {
	a.history = append(a.history, llm.Message{Role: "user", Content: input})

	specs := a.registry.Specs()

	for round := 0; round < a.cfg.MaxToolRounds; round++ {
		reply, err := a.llm.Chat(ctx, a.history, specs)
		if err != nil {
			return "", fmt.Errorf("model request failed: %w", err)
		}

		a.history = append(a.history, reply)

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		for _, msg := range a.dispatchToolCalls(ctx, reply.ToolCalls) {
			a.history = append(a.history, msg)
		}
	}

	return "", fmt.Errorf("model did not produce a final answer after %d tool rounds", a.cfg.MaxToolRounds)
}

// dispatchToolCalls выполняет вызовы одного раунда параллельно.
// Зависимостей между вызовами модель не объявляет, а в историю
// результаты попадают строго в порядке запроса.
func (a *App) dispatchToolCalls(ctx context.Context, calls []llm.ToolCall) []llm.Message {
	results := make([]llm.Message, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(idx int, tc llm.ToolCall) {
			defer wg.Done()

			toolCtx, cancel := context.WithTimeout(ctx, a.cfg.ToolTimeout)
			defer cancel()

			out := a.registry.Dispatch(toolCtx, tc.Function.Name, json.RawMessage(tc.Function.Arguments))
			results[idx] = llm.Message{
				Role:       "tool",
				Content:    out,
				ToolCallID: tc.ID,
			}
		}(i, call)
	}
	wg.Wait()

	return results
}

// History возвращает накопленную историю диалога
func (a *App) History() []llm.Message {
	return a.history
}

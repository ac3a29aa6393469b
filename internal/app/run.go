package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Run запускает консольный цикл диалога. Каждая строка - реплика
// пользователя, "exit" завершает сессию.
func (a *App) Run(ctx context.Context) error {
	log.Println("Insurance assistant started")
	log.Println("Ask about your policies or conditions. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)

	// Увеличим буфер, если реплики будут длинные
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
			fmt.Print("User > ")

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				// EOF
				log.Println("stdin closed")
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" {
				log.Println("Session finished")
				return nil
			}

			answer, err := a.HandleTurn(ctx, line)
			if err != nil {
				log.Printf("❌ Model error: %v", err)
				continue
			}

			fmt.Println("Assistant > " + answer)
		}
	}
}

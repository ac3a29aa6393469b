package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"insurance_rag/internal/conditions"
	"insurance_rag/internal/document"
	"insurance_rag/internal/llm"
	"insurance_rag/internal/storage"
)

// ConditionsLoader загружает документ условий по категории полиса
type ConditionsLoader interface {
	LoadDocument(ctx context.Context, category string) (conditions.LoadResult, error)
}

// RegisterDocumentTools регистрирует инструменты работы с документами
// условий: загрузка по категории, поиск по содержимому, сводка.
func RegisterDocumentTools(r *Registry, loader ConditionsLoader, store *document.Store, topK int) {
	r.Register(Tool{
		Name: "load_conditions_by_category",
		Description: "Loads insurance policy conditions document from storage based on the policy category " +
			"(e.g., Car, Injuries, Home). Retrieves the document from database storage and prepares it for analysis.",
		Parameters: llm.ObjectSchema(map[string]llm.Property{
			"category": {Type: "string", Description: "The insurance policy category (e.g., Car, Injuries, Home)"},
		}, "category"),
		Run: func(ctx context.Context, args json.RawMessage) string {
			var in struct {
				Category string `json:"category"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return fmt.Sprintf("Error: invalid arguments: %v", err)
			}
			return loadConditions(ctx, loader, in.Category)
		},
	})

	r.Register(Tool{
		Name: "search_pdf_content",
		Description: "Searches the loaded conditions document for relevant content based on keywords. " +
			"Returns only the most relevant chunks (not the entire document). " +
			"Use this to find specific information efficiently.",
		Parameters: llm.ObjectSchema(map[string]llm.Property{
			"query": {Type: "string", Description: "Keywords or question to search for in the document"},
		}, "query"),
		Run: func(ctx context.Context, args json.RawMessage) string {
			var in struct {
				Query string `json:"query"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return fmt.Sprintf("Error: invalid arguments: %v", err)
			}
			return searchContent(store, in.Query, topK)
		},
	})

	r.Register(Tool{
		Name:        "get_pdf_info",
		Description: "Returns information about the currently loaded conditions document (filename, chunks, loaded status).",
		Parameters:  llm.ObjectSchema(nil),
		Run: func(ctx context.Context, args json.RawMessage) string {
			return describeDocument(store)
		},
	})
}

func loadConditions(ctx context.Context, loader ConditionsLoader, category string) string {
	result, err := loader.LoadDocument(ctx, category)

	switch {
	case err == nil:
		return fmt.Sprintf("Successfully loaded conditions: %s (%d pages, %d chunks). Ready for analysis!",
			result.Name, result.Pages, result.Chunks)

	case errors.Is(err, storage.ErrNoConnection):
		return "Error: Cannot connect to database. Please check your MongoDB connection string."

	case errors.Is(err, conditions.ErrNoCategory):
		return fmt.Sprintf("No conditions found for category '%s'. Available categories can be checked in the database.", category)

	default:
		var fileErr *conditions.FileAccessError
		if errors.As(err, &fileErr) {
			return fmt.Sprintf("Conditions '%s' found but file not accessible at: %s", fileErr.Name, fileErr.Path)
		}
		return fmt.Sprintf("Error loading conditions: %v", err)
	}
}

func searchContent(store *document.Store, query string, topK int) string {
	chunks, filename, loaded := store.Snapshot()
	if !loaded {
		return "No conditions loaded. Please use load_conditions_by_category first to load a policy conditions document."
	}

	matches := document.Search(query, chunks, topK)
	if len(matches) == 0 {
		return fmt.Sprintf("No relevant content found for '%s' in %s", query, filename)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d relevant section(s) in %s:\n\n", len(matches), filename)
	for i, m := range matches {
		fmt.Fprintf(&b, "--- Section %d (Relevance: %d matches) ---\n", i+1, m.Score)
		b.WriteString(m.Chunk.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

func describeDocument(store *document.Store) string {
	info, ok := store.Describe()
	if !ok {
		return "No conditions document currently loaded."
	}

	return fmt.Sprintf("Document Information:\n- Filename: %s\n- Chunks: %d\n- Total characters: %d\n- Status: Loaded and ready\n- Tip: Use search_pdf_content to find relevant sections efficiently",
		info.Filename, info.Chunks, info.TotalChars)
}

package chunker

import (
	"path/filepath"
	"strings"
)

// Factory создаёт chunker на основе типа файла
type Factory struct {
	config Config
}

// NewFactory создаёт новую фабрику chunker'ов
func NewFactory(config Config) *Factory {
	return &Factory{config: config}
}

// GetChunker возвращает подходящий chunker для файла
func (f *Factory) GetChunker(filePath string) Chunker {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".md", ".markdown":
		return NewMarkdownChunker(f.config)
	default:
		return NewWordChunker(f.config)
	}
}

package chunker

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownChunker извлекает текст markdown документа через AST
// и дальше разбивает его как обычный текст
type MarkdownChunker struct {
	config Config
	words  *WordChunker
}

// NewMarkdownChunker создаёт новый markdown chunker
func NewMarkdownChunker(config Config) *MarkdownChunker {
	return &MarkdownChunker{
		config: config,
		words:  NewWordChunker(config),
	}
}

func (m *MarkdownChunker) Name() string {
	return "markdown"
}

func (m *MarkdownChunker) Chunk(content string) ([]Chunk, error) {
	plain := extractPlainText(content)
	if strings.TrimSpace(plain) == "" {
		return nil, fmt.Errorf("markdown chunker: no text content found")
	}
	return m.words.Chunk(plain)
}

// extractPlainText собирает текст из узлов AST в порядке документа
func extractPlainText(content string) string {
	md := goldmark.New()
	source := []byte(content)
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var buf strings.Builder

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				buf.WriteString("\n" + extractText(heading, source) + "\n")
				return ast.WalkSkipChildren, nil
			}
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(source))
				buf.WriteString(" ")
			}
		} else {
			if _, ok := n.(*ast.Paragraph); ok {
				buf.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

// extractText извлекает текст из узла AST
func extractText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}

package chunker

import "strings"

// WordChunker накапливает слова до порога размера и переносит хвост
// из последних слов в следующий чанк, чтобы фраза на границе чанков
// не терялась при поиске.
type WordChunker struct {
	config Config
}

// NewWordChunker создаёт новый word chunker
func NewWordChunker(config Config) *WordChunker {
	return &WordChunker{config: config}
}

func (c *WordChunker) Name() string {
	return "words"
}

func (c *WordChunker) Chunk(content string) ([]Chunk, error) {
	words := strings.Fields(content)

	var chunks []Chunk
	var current []string
	size := 0

	for _, w := range words {
		current = append(current, w)
		size += len(w) + 1

		// Порог проверяем после добавления слова, поэтому чанк может
		// превысить лимит максимум на длину одного слова
		if size >= c.config.MaxChunkSize {
			chunks = append(chunks, makeChunk(current))

			// Хвост предыдущего чанка становится началом следующего
			tail := c.config.OverlapTokens
			if tail > len(current) {
				tail = len(current)
			}
			current = append([]string(nil), current[len(current)-tail:]...)

			size = 0
			for _, t := range current {
				size += len(t) + 1
			}
		}
	}

	// Остаток буфера - последний чанк
	if len(current) > 0 {
		chunks = append(chunks, makeChunk(current))
	}

	return chunks, nil
}

func makeChunk(words []string) Chunk {
	text := strings.Join(words, " ")
	return Chunk{Text: text, Size: len(text)}
}

package document

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance_rag/internal/chunker"
)

func mkChunks(texts ...string) []chunker.Chunk {
	chunks := make([]chunker.Chunk, 0, len(texts))
	for _, t := range texts {
		chunks = append(chunks, chunker.Chunk{Text: t, Size: len(t)})
	}
	return chunks
}

func TestSearchScoresByTermContainment(t *testing.T) {
	chunks := mkChunks(
		"fire alarm system",
		"flood and storm cover",
		"fire and damage excluded",
	)

	matches := Search("fire damage", chunks, 3)
	require.Len(t, matches, 2)

	// Чанк без совпадений отброшен, остальные по убыванию счёта
	assert.Equal(t, "fire and damage excluded", matches[0].Chunk.Text)
	assert.Equal(t, 2, matches[0].Score)
	assert.Equal(t, "fire alarm system", matches[1].Chunk.Text)
	assert.Equal(t, 1, matches[1].Score)
}

func TestSearchDuplicateTermsDoNotInflateScore(t *testing.T) {
	chunks := mkChunks("fire cover for the house")

	matches := Search("fire fire FIRE", chunks, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
}

func TestSearchSubstringContainment(t *testing.T) {
	// "fire" входит в "firewall" как подстрока - это засчитывается
	chunks := mkChunks("corporate firewall policy")

	matches := Search("fire", chunks, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
}

func TestSearchTieBreakKeepsDocumentOrder(t *testing.T) {
	chunks := mkChunks(
		"storm damage in the north",
		"storm damage in the south",
	)

	matches := Search("storm", chunks, 3)
	require.Len(t, matches, 2)
	assert.Equal(t, "storm damage in the north", matches[0].Chunk.Text)
	assert.Equal(t, "storm damage in the south", matches[1].Chunk.Text)
}

func TestSearchTopKBound(t *testing.T) {
	var texts []string
	for i := 0; i < 10; i++ {
		// Разное количество совпадающих слов, чтобы счёт различался
		switch {
		case i < 3:
			texts = append(texts, fmt.Sprintf("flood storm fire chunk %d", i))
		default:
			texts = append(texts, fmt.Sprintf("flood chunk %d", i))
		}
	}

	matches := Search("flood storm fire", mkChunks(texts...), 3)
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Equal(t, 3, m.Score)
	}
}

func TestSearchNoMatches(t *testing.T) {
	matches := Search("earthquake", mkChunks("flood cover", "storm cover"), 3)
	assert.Empty(t, matches)

	matches = Search("   ", mkChunks("flood cover"), 3)
	assert.Empty(t, matches)
}

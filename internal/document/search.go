package document

import (
	"sort"
	"strings"

	"insurance_rag/internal/chunker"
)

// Match - чанк с количеством совпавших слов запроса
type Match struct {
	Chunk chunker.Chunk
	Score int
}

// Search ранжирует чанки по числу уникальных слов запроса, которые
// встречаются как подстроки текста чанка. Чанки без совпадений
// отбрасываются, при равном счёте сохраняется порядок документа.
func Search(query string, chunks []chunker.Chunk, topK int) []Match {
	terms := uniqueTerms(query)
	if len(terms) == 0 || topK <= 0 {
		return nil
	}

	var matches []Match
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)

		score := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				score++
			}
		}

		if score > 0 {
			matches = append(matches, Match{Chunk: ch, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// uniqueTerms приводит запрос к нижнему регистру и убирает повторы слов,
// чтобы повторённое слово не накручивало собственный вес
func uniqueTerms(query string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	return terms
}

package document

import (
	"sync"

	"insurance_rag/internal/chunker"
)

// Store хранит чанки одного загруженного документа. Загрузка нового
// документа полностью вытесняет предыдущий - мультидокументного
// индекса здесь нет.
type Store struct {
	mu       sync.RWMutex
	chunks   []chunker.Chunk
	filename string
	loaded   bool
}

// Info - сводка по загруженному документу
type Info struct {
	Filename   string
	Chunks     int
	TotalChars int
}

func NewStore() *Store {
	return &Store{}
}

// Load заменяет текущее состояние новым документом.
// Инвариант: loaded == true только если есть чанки и имя файла.
func (s *Store) Load(chunks []chunker.Chunk, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chunks = chunks
	s.filename = filename
	s.loaded = len(chunks) > 0 && filename != ""
}

func (s *Store) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot возвращает согласованную копию состояния для поиска
func (s *Store) Snapshot() ([]chunker.Chunk, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks := make([]chunker.Chunk, len(s.chunks))
	copy(chunks, s.chunks)
	return chunks, s.filename, s.loaded
}

// Describe возвращает сводку по документу, ok == false если ничего не загружено
func (s *Store) Describe() (Info, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return Info{}, false
	}

	total := 0
	for _, ch := range s.chunks {
		total += ch.Size
	}

	return Info{
		Filename:   s.filename,
		Chunks:     len(s.chunks),
		TotalChars: total,
	}, true
}

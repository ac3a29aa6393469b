package chunker

// Chunk представляет единицу текста для поиска
type Chunk struct {
	Text string // Текст чанка
	Size int    // Длина текста в символах
}

// Chunker - интерфейс для всех типов chunker'ов
type Chunker interface {
	// Chunk разбивает контент на чанки
	Chunk(content string) ([]Chunk, error)

	// Name возвращает название chunker'а для логирования
	Name() string
}

// Config содержит общие параметры для chunker'ов
type Config struct {
	MaxChunkSize  int // Порог размера чанка в символах
	OverlapTokens int // Сколько последних слов уходит в начало следующего чанка
}

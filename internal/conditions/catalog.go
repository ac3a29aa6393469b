package conditions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"insurance_rag/internal/chunker"
	"insurance_rag/internal/document"
	"insurance_rag/internal/extract"
	"insurance_rag/internal/storage"
)

// ErrNoCategory - в базе нет условий для запрошенной категории
var ErrNoCategory = errors.New("no conditions for category")

// FileAccessError - запись в базе есть, но сам файл с условиями недоступен
type FileAccessError struct {
	Name string
	Path string
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("conditions %q: file not accessible at %s", e.Name, e.Path)
}

// Entry - запись каталога условий: категория, название редакции
// и путь к файлу документа
type Entry struct {
	Category   string `bson:"category"`
	Name       string `bson:"name_conditions"`
	StorageURL string `bson:"storage_url"`
}

// LoadResult - сводка успешной загрузки документа с условиями
type LoadResult struct {
	Name   string
	Pages  int
	Chunks int
}

// Catalog ищет условия по категории полиса и загружает их документ
// в хранилище чанков
type Catalog struct {
	db      *storage.Client
	store   *document.Store
	factory *chunker.Factory
}

func NewCatalog(db *storage.Client, store *document.Store, factory *chunker.Factory) *Catalog {
	return &Catalog{db: db, store: store, factory: factory}
}

// LookupName возвращает название редакции условий для категории,
// пустую строку если совпадения нет
func (c *Catalog) LookupName(ctx context.Context, category string) (string, error) {
	entry, err := c.findEntry(ctx, category)
	if errors.Is(err, ErrNoCategory) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

// LoadDocument находит документ условий по категории, извлекает текст,
// режет на чанки и заменяет текущее состояние хранилища.
// Различимые отказы: нет соединения с базой (storage.ErrNoConnection),
// нет такой категории (ErrNoCategory), файл недоступен (*FileAccessError).
func (c *Catalog) LoadDocument(ctx context.Context, category string) (LoadResult, error) {
	entry, err := c.findEntry(ctx, category)
	if err != nil {
		return LoadResult{}, err
	}

	if entry.StorageURL == "" {
		return LoadResult{}, &FileAccessError{Name: entry.Name, Path: entry.StorageURL}
	}
	if _, statErr := os.Stat(entry.StorageURL); statErr != nil {
		return LoadResult{}, &FileAccessError{Name: entry.Name, Path: entry.StorageURL}
	}

	text, pages, err := extractText(entry.StorageURL)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to extract text: %w", err)
	}

	chunks, err := c.factory.GetChunker(entry.StorageURL).Chunk(text)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to chunk document: %w", err)
	}

	c.store.Load(chunks, entry.Name)

	return LoadResult{Name: entry.Name, Pages: pages, Chunks: len(chunks)}, nil
}

// findEntry ищет категорию без учёта регистра, совпадение точное
func (c *Catalog) findEntry(ctx context.Context, category string) (Entry, error) {
	coll, err := c.db.Conditions(ctx)
	if err != nil {
		return Entry{}, err
	}

	filter := bson.D{{Key: "category", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(category) + "$",
		Options: "i",
	}}}

	var entry Entry
	err = coll.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNoCategory, category)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to query conditions: %w", err)
	}
	return entry, nil
}

// extractText выбирает способ извлечения текста по расширению файла
func extractText(path string) (string, int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extract.PDFText(path)
	default:
		// markdown и plain text читаем как есть, одна логическая страница
		data, err := os.ReadFile(path)
		if err != nil {
			return "", 0, err
		}
		return string(data), 1, nil
	}
}

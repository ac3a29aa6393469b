package insurance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance_rag/internal/config"
	"insurance_rag/internal/storage"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysUntil(now.AddDate(0, 0, 5), now))
	assert.Equal(t, -10, DaysUntil(now.AddDate(0, 0, -10), now))
	assert.Equal(t, 0, DaysUntil(now.Add(12*time.Hour), now))
	// Неполный прошедший день считается как истёкший
	assert.Equal(t, -1, DaysUntil(now.Add(-12*time.Hour), now))
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Expired", StatusLabel(now.AddDate(0, 0, -10), now))
	assert.Equal(t, "5 days left", StatusLabel(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "0 days left", StatusLabel(now.Add(time.Hour), now))
}

type noLookup struct{}

func (noLookup) LookupName(ctx context.Context, category string) (string, error) {
	return "", nil
}

func TestAddValidatesDateBeforePersisting(t *testing.T) {
	// Клиент без строки подключения: если валидация даты сработала
	// до обращения к базе, ошибки соединения мы не увидим
	db := storage.New(config.Mongo{})
	catalog := NewCatalog(db, noLookup{})

	_, _, err := catalog.Add(context.Background(), "Alice", "Car", "Acme", "Full cover", "not-a-date")
	require.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = catalog.Add(context.Background(), "Alice", "Car", "Acme", "Full cover", "2099-13-45")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddReportsMissingConnection(t *testing.T) {
	db := storage.New(config.Mongo{})
	catalog := NewCatalog(db, noLookup{})

	_, _, err := catalog.Add(context.Background(), "Alice", "Car", "Acme", "Full cover", "2099-01-01")
	require.ErrorIs(t, err, storage.ErrNoConnection)
}

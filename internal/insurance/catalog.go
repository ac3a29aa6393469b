package insurance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insurance_rag/internal/storage"
)

// ErrInvalidDate - ошибка валидации даты, возвращается до любой записи в базу
var ErrInvalidDate = errors.New("invalid expiration date")

// ConditionsLookup возвращает название редакции условий по категории полиса
type ConditionsLookup interface {
	LookupName(ctx context.Context, category string) (string, error)
}

// Catalog - операции над коллекцией страховых полисов
type Catalog struct {
	db         *storage.Client
	conditions ConditionsLookup
}

func NewCatalog(db *storage.Client, conditions ConditionsLookup) *Catalog {
	return &Catalog{db: db, conditions: conditions}
}

// NextExpiring возвращает полис с ближайшей датой окончания, начиная с now.
// Если подходящих полисов нет - (nil, nil), это не ошибка.
func (c *Catalog) NextExpiring(ctx context.Context, now time.Time) (*PolicyRecord, error) {
	coll, err := c.db.Policies(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "expiration_date", Value: bson.D{{Key: "$gte", Value: now}}}}
	opts := options.FindOne().SetSort(bson.D{{Key: "expiration_date", Value: 1}})

	var record PolicyRecord
	err = coll.FindOne(ctx, filter, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query next expiration: %w", err)
	}
	return &record, nil
}

// ListAll возвращает все полисы по возрастанию даты окончания
func (c *Catalog) ListAll(ctx context.Context) ([]PolicyRecord, error) {
	coll, err := c.db.Policies(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "expiration_date", Value: 1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer cursor.Close(ctx)

	var records []PolicyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode policies: %w", err)
	}
	return records, nil
}

// Add валидирует дату, подбирает редакцию условий по типу полиса и
// сохраняет новую запись. Возвращает назначенный базой идентификатор
// и название подобранных условий. Отсутствие условий для категории
// не считается ошибкой - поле остаётся пустым.
func (c *Catalog) Add(ctx context.Context, holder, policyType, provider, guarantees, expiration string) (id, conditionsName string, err error) {
	// Дату проверяем до обращения к базе
	expDate, parseErr := time.Parse(DateFormat, expiration)
	if parseErr != nil {
		return "", "", ErrInvalidDate
	}

	coll, err := c.db.Policies(ctx)
	if err != nil {
		return "", "", err
	}

	conditionsName, lookupErr := c.conditions.LookupName(ctx, policyType)
	if lookupErr != nil {
		conditionsName = ""
	}

	record := PolicyRecord{
		PolicyHolder:   holder,
		PolicyType:     policyType,
		Provider:       provider,
		Guarantees:     guarantees,
		ExpirationDate: expDate,
		Conditions:     conditionsName,
		CreatedAt:      time.Now(),
	}

	result, err := coll.InsertOne(ctx, record)
	if err != nil {
		return "", "", fmt.Errorf("failed to insert policy: %w", err)
	}

	return formatInsertedID(result.InsertedID), conditionsName, nil
}

// Count возвращает количество полисов в коллекции
func (c *Catalog) Count(ctx context.Context) (int64, error) {
	coll, err := c.db.Policies(ctx)
	if err != nil {
		return 0, err
	}

	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count policies: %w", err)
	}
	return count, nil
}

func formatInsertedID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}

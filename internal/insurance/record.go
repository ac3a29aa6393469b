package insurance

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateFormat - единственный принимаемый формат даты окончания полиса
const DateFormat = "2006-01-02"

// PolicyRecord - страховой полис. Запись не изменяется после создания,
// уникальный идентификатор назначает база.
type PolicyRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	PolicyHolder   string             `bson:"policy_holder"`
	PolicyType     string             `bson:"policy_type"`
	Provider       string             `bson:"provider"`
	Guarantees     string             `bson:"guarantees"`
	ExpirationDate time.Time          `bson:"expiration_date"`
	Conditions     string             `bson:"conditions"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// DaysUntil считает полные дни до окончания полиса,
// отрицательное значение - полис уже истёк
func DaysUntil(expiration, now time.Time) int {
	return int(math.Floor(expiration.Sub(now).Hours() / 24))
}

// StatusLabel возвращает подпись срока действия для вывода
func StatusLabel(expiration, now time.Time) string {
	days := DaysUntil(expiration, now)
	if days < 0 {
		return "Expired"
	}
	return fmt.Sprintf("%d days left", days)
}

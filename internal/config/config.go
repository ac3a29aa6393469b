package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Llm - настройки OpenAI-совместимого чат-провайдера
type Llm struct {
	URL         string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Key         string        `env:"OPENAI_API_KEY"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"120s"`
	MaxTokens   int           `env:"MAX_TOKENS" envDefault:"1024"`
	Temperature float64       `env:"TEMPERATURE" envDefault:"0.2"`
}

// Mongo - подключение к базе с полисами и условиями
type Mongo struct {
	URI        string        `env:"MONGODB_CONNECTION_STRING"`
	Database   string        `env:"DB_NAME" envDefault:"insurance_db"`
	Policies   string        `env:"COLLECTIONS" envDefault:"insurances"`
	Conditions string        `env:"CONDITIONS_COLLECTION" envDefault:"policy_conditions"`
	Timeout    time.Duration `env:"DB_TIMEOUT" envDefault:"10s"`
}

type Config struct {
	LlmMain Llm
	Mongo   Mongo

	ChunkSize     int `env:"CHUNK_SIZE" envDefault:"1000"`
	OverlapTokens int `env:"CHUNK_OVERLAP_TOKENS" envDefault:"100"`
	TopK          int `env:"TOP_K" envDefault:"3"`

	// Предохранитель от бесконечного цикла tool-вызовов
	MaxToolRounds int           `env:"MAX_TOOL_ROUNDS" envDefault:"8"`
	ToolTimeout   time.Duration `env:"TOOL_TIMEOUT" envDefault:"30s"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}

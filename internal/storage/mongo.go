package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insurance_rag/internal/config"
)

// ErrNoConnection возвращается, когда база недоступна или строка
// подключения не задана. Инструменты переводят её в текст для модели.
var ErrNoConnection = errors.New("no database connection")

// Client - явно создаваемый хэндл подключения к MongoDB. Создаётся один
// раз на старте, само соединение устанавливается лениво при первой
// операции. Неудачное подключение не фатально: состояние остаётся
// "not connected", следующий вызов попробует подключиться снова.
type Client struct {
	cfg config.Mongo

	mu        sync.Mutex
	client    *mongo.Client
	connected bool
}

func New(cfg config.Mongo) *Client {
	return &Client{cfg: cfg}
}

// ensure устанавливает соединение при необходимости и проверяет его ping'ом
func (c *Client) ensure(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return c.client, nil
	}

	if c.cfg.URI == "" {
		return nil, fmt.Errorf("%w: MONGODB_CONNECTION_STRING is not set", ErrNoConnection)
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(c.cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConnection, err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrNoConnection, err)
	}

	c.client = client
	c.connected = true
	return client, nil
}

// Policies возвращает коллекцию страховых полисов
func (c *Client) Policies(ctx context.Context) (*mongo.Collection, error) {
	client, err := c.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.cfg.Database).Collection(c.cfg.Policies), nil
}

// Conditions возвращает коллекцию документов с условиями
func (c *Client) Conditions(ctx context.Context) (*mongo.Collection, error) {
	client, err := c.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.cfg.Database).Collection(c.cfg.Conditions), nil
}

// Ping проверяет доступность базы по требованию
func (c *Client) Ping(ctx context.Context) error {
	client, err := c.ensure(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, nil)
}

// Close разрывает соединение при завершении процесса
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	return c.client.Disconnect(ctx)
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/huynhanx03/go-reqbatch/pkg/settings"
	"github.com/huynhanx03/go-reqbatch/pkg/utils"
)

const (
	defaultPort            = 27017
	defaultTimeout         = 10 // Seconds
	defaultMaxPoolSize     = 100
	defaultMaxConnIdleTime = 60 // Seconds
)

type MongoEngine struct {
	client *mongo.Client
	config *settings.MongoDB
}

// connect initializes the MongoDB client
func (m *MongoEngine) connect() error {
	m.setDefaultConfig()

	uri := fmt.Sprintf("mongodb://%s:%d", m.config.Host, m.config.Port)
	if m.config.Username != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%d",
			m.config.Username, m.config.Password, m.config.Host, m.config.Port)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(m.config.MaxPoolSize).
		SetMinPoolSize(m.config.MinPoolSize).
		SetMaxConnIdleTime(utils.ToDuration(int(m.config.MaxConnIdleTime)))

	ctx, cancel := context.WithTimeout(context.Background(), utils.ToDuration(m.config.Timeout))
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}

	m.client = client
	return nil
}

// setDefaultConfig sets default values for MongoDB configuration
func (m *MongoEngine) setDefaultConfig() {
	if m.config.Port == 0 {
		m.config.Port = defaultPort
	}
	if m.config.Timeout == 0 {
		m.config.Timeout = defaultTimeout
	}
	if m.config.MaxPoolSize == 0 {
		m.config.MaxPoolSize = defaultMaxPoolSize
	}
	if m.config.MaxConnIdleTime == 0 {
		m.config.MaxConnIdleTime = defaultMaxConnIdleTime
	}
}

// Collection returns a collection handle in the configured database
func (m *MongoEngine) Collection(name string) *mongo.Collection {
	return m.client.Database(m.config.Database).Collection(name)
}

// Close disconnects the MongoDB client
func (m *MongoEngine) Close() {
	if m.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), utils.ToDuration(m.config.Timeout))
		defer cancel()
		m.client.Disconnect(ctx)
	}
}

// Client returns the underlying mongo client (Escape hatch)
func (m *MongoEngine) Client() *mongo.Client {
	return m.client
}

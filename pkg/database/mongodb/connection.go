package mongodb

import (
	"github.com/huynhanx03/go-reqbatch/pkg/settings"
)

// NewConnection creates and returns a new MongoDB client
func NewConnection(cfg *settings.MongoDB) (*MongoEngine, error) {
	engine := &MongoEngine{
		config: cfg,
	}

	if err := engine.connect(); err != nil {
		return nil, err
	}

	return engine, nil
}

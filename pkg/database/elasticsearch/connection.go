package elasticsearch

import (
	"github.com/huynhanx03/go-reqbatch/pkg/settings"
)

// NewConnection creates and returns a new Elasticsearch client
func NewConnection(cfg *settings.Elasticsearch) (*ElasticEngine, error) {
	engine := &ElasticEngine{
		config: cfg,
	}

	if err := engine.connect(); err != nil {
		return nil, err
	}

	return engine, nil
}

package elasticsearch

import (
	"fmt"

	elasticV8 "github.com/elastic/go-elasticsearch/v8"

	"github.com/huynhanx03/go-reqbatch/pkg/settings"
)

type ElasticEngine struct {
	client *elasticV8.Client
	config *settings.Elasticsearch
}

var _ ElasticClient = (*elasticV8.Client)(nil)

// connect initializes the Elasticsearch client
func (e *ElasticEngine) connect() error {
	client, err := elasticV8.NewClient(elasticV8.Config{
		Addresses: e.config.Addresses,
		Username:  e.config.Username,
		Password:  e.config.Password,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	res, err := client.Info()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrPingFailed, res.Status())
	}

	e.client = client
	return nil
}

// Client returns the underlying elasticsearch client (Escape hatch)
func (e *ElasticEngine) Client() *elasticV8.Client {
	return e.client
}

package sink

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-reqbatch/pkg/database/elasticsearch"
	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
	bufpool "github.com/huynhanx03/go-reqbatch/pkg/pool/buffer"
)

var bulkActionLine = []byte(`{"index":{}}` + "\n")

// Elastic delivers each batch as one Bulk request against an index. The
// NDJSON body is assembled in a pooled buffer.
type Elastic[T any] struct {
	client elasticsearch.ElasticClient
	index  string
	encode Encoder[T]
	log    *zap.Logger
}

var _ batcher.Consumer[int] = (*Elastic[int])(nil)

// ElasticOption configures an Elastic sink.
type ElasticOption[T any] func(*Elastic[T])

// WithElasticEncoder replaces the payload encoder (default JSONEncoder).
func WithElasticEncoder[T any](enc Encoder[T]) ElasticOption[T] {
	return func(s *Elastic[T]) { s.encode = enc }
}

// WithElasticLogger sets the logger (default zap.NewNop).
func WithElasticLogger[T any](log *zap.Logger) ElasticOption[T] {
	return func(s *Elastic[T]) { s.log = log }
}

// NewElastic creates an Elastic sink indexing into index.
func NewElastic[T any](client elasticsearch.ElasticClient, index string, opts ...ElasticOption[T]) *Elastic[T] {
	s := &Elastic[T]{
		client: client,
		index:  index,
		encode: JSONEncoder[T],
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements batcher.Consumer.
func (s *Elastic[T]) Consume(batch []T) error {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	for _, item := range batch {
		payload, err := s.encode(item)
		if err != nil {
			s.log.Error("elastic sink encode failed",
				zap.String("index", s.index), zap.Error(err))
			return err
		}
		buf.Write(bulkActionLine)
		buf.Write(payload)
		buf.WriteByte('\n')
	}
	body := buf.Len()

	req := esapi.BulkRequest{
		Index: s.index,
		Body:  bytes.NewReader(buf.Bytes()),
	}

	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		s.log.Error("elastic sink delivery failed",
			zap.String("index", s.index),
			zap.Int("size", len(batch)),
			zap.Error(err))
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		err := ErrBulkFailed
		s.log.Error("elastic sink delivery failed",
			zap.String("index", s.index),
			zap.String("status", res.Status()))
		return err
	}

	// Per-item failures come back with a 200; surface them as one error.
	var body struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Errors {
		s.log.Error("elastic sink bulk had item errors",
			zap.String("index", s.index), zap.Int("size", len(batch)))
		return ErrBulkItemsFailed
	}

	s.log.Debug("elastic sink delivered",
		zap.String("index", s.index),
		zap.Int("size", len(batch)),
		zap.Int("bytes", body))
	return nil
}

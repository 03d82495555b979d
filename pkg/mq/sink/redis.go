package sink

import (
	"context"

	redisV9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
)

// Redis delivers each batch as one pipeline of RPush commands, one per item,
// onto a list key.
type Redis[T any] struct {
	client redisV9.UniversalClient
	key    string
	encode Encoder[T]
	ids    IDGenerator
	log    *zap.Logger
}

var _ batcher.Consumer[int] = (*Redis[int])(nil)

// RedisOption configures a Redis sink.
type RedisOption[T any] func(*Redis[T])

// WithRedisEncoder replaces the payload encoder (default JSONEncoder).
func WithRedisEncoder[T any](enc Encoder[T]) RedisOption[T] {
	return func(s *Redis[T]) { s.encode = enc }
}

// WithRedisIDGenerator wraps each payload into an Envelope carrying the
// batch id and the item's position within the batch.
func WithRedisIDGenerator[T any](ids IDGenerator) RedisOption[T] {
	return func(s *Redis[T]) { s.ids = ids }
}

// WithRedisLogger sets the logger (default zap.NewNop).
func WithRedisLogger[T any](log *zap.Logger) RedisOption[T] {
	return func(s *Redis[T]) { s.log = log }
}

// NewRedis creates a Redis sink appending to the list at key.
func NewRedis[T any](client redisV9.UniversalClient, key string, opts ...RedisOption[T]) *Redis[T] {
	s := &Redis[T]{
		client: client,
		key:    key,
		encode: JSONEncoder[T],
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements batcher.Consumer.
func (s *Redis[T]) Consume(batch []T) error {
	ctx := context.Background()

	payloads, err := encodeBatch(batch, s.encode, s.ids)
	if err != nil {
		s.log.Error("redis sink encode failed",
			zap.String("key", s.key), zap.Error(err))
		return err
	}

	_, err = s.client.Pipelined(ctx, func(pipe redisV9.Pipeliner) error {
		for _, p := range payloads {
			pipe.RPush(ctx, s.key, p)
		}
		return nil
	})
	if err != nil {
		s.log.Error("redis sink delivery failed",
			zap.String("key", s.key),
			zap.Int("size", len(batch)),
			zap.Error(err))
		return err
	}

	s.log.Debug("redis sink delivered",
		zap.String("key", s.key), zap.Int("size", len(batch)))
	return nil
}

// encodeBatch encodes every item; with a generator present, payloads are
// wrapped into Envelopes sharing one batch id.
func encodeBatch[T any](batch []T, encode Encoder[T], ids IDGenerator) ([][]byte, error) {
	var batchID int64
	if ids != nil {
		batchID = ids.Generate()
	}

	payloads := make([][]byte, 0, len(batch))
	for i, item := range batch {
		payload, err := encode(item)
		if err != nil {
			return nil, err
		}
		if ids != nil {
			payload, err = JSONEncoder(Envelope{
				BatchID: batchID,
				Seq:     i,
				Payload: payload,
			})
			if err != nil {
				return nil, err
			}
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}

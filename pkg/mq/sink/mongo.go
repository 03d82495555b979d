package sink

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
)

// Mongo delivers each batch as one ordered InsertMany into a collection.
type Mongo[T any] struct {
	coll *mongo.Collection
	ids  IDGenerator
	log  *zap.Logger
}

var _ batcher.Consumer[int] = (*Mongo[int])(nil)

// MongoOption configures a Mongo sink.
type MongoOption[T any] func(*Mongo[T])

// WithMongoIDGenerator stamps each document set with a shared batch id via
// an Envelope wrapper.
func WithMongoIDGenerator[T any](ids IDGenerator) MongoOption[T] {
	return func(s *Mongo[T]) { s.ids = ids }
}

// WithMongoLogger sets the logger (default zap.NewNop).
func WithMongoLogger[T any](log *zap.Logger) MongoOption[T] {
	return func(s *Mongo[T]) { s.log = log }
}

// NewMongo creates a Mongo sink inserting into coll.
func NewMongo[T any](coll *mongo.Collection, opts ...MongoOption[T]) *Mongo[T] {
	s := &Mongo[T]{
		coll: coll,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements batcher.Consumer. Items are inserted in batch order;
// the driver marshals them to BSON directly.
func (s *Mongo[T]) Consume(batch []T) error {
	ctx := context.Background()

	docs := make([]interface{}, 0, len(batch))
	if s.ids != nil {
		batchID := s.ids.Generate()
		for i, item := range batch {
			payload, err := JSONEncoder(item)
			if err != nil {
				s.log.Error("mongo sink encode failed",
					zap.String("collection", s.coll.Name()), zap.Error(err))
				return err
			}
			docs = append(docs, Envelope{BatchID: batchID, Seq: i, Payload: payload})
		}
	} else {
		for _, item := range batch {
			docs = append(docs, item)
		}
	}

	_, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		s.log.Error("mongo sink delivery failed",
			zap.String("collection", s.coll.Name()),
			zap.Int("size", len(batch)),
			zap.Error(err))
		return err
	}

	s.log.Debug("mongo sink delivered",
		zap.String("collection", s.coll.Name()), zap.Int("size", len(batch)))
	return nil
}

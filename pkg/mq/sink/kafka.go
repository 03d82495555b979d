package sink

import (
	"strconv"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
	"github.com/huynhanx03/go-reqbatch/pkg/settings"
	"github.com/huynhanx03/go-reqbatch/pkg/utils"
)

const batchIDHeader = "batch-id"

// Kafka delivers each batch as one SendMessages call to a topic.
type Kafka[T any] struct {
	producer sarama.SyncProducer
	topic    string
	encode   Encoder[T]
	ids      IDGenerator
	log      *zap.Logger
}

var _ batcher.Consumer[int] = (*Kafka[int])(nil)

// KafkaOption configures a Kafka sink.
type KafkaOption[T any] func(*Kafka[T])

// WithKafkaEncoder replaces the payload encoder (default JSONEncoder).
func WithKafkaEncoder[T any](enc Encoder[T]) KafkaOption[T] {
	return func(s *Kafka[T]) { s.encode = enc }
}

// WithKafkaIDGenerator stamps each batch with an id carried as a message
// header on every message of the batch.
func WithKafkaIDGenerator[T any](ids IDGenerator) KafkaOption[T] {
	return func(s *Kafka[T]) { s.ids = ids }
}

// WithKafkaLogger sets the logger (default zap.NewNop).
func WithKafkaLogger[T any](log *zap.Logger) KafkaOption[T] {
	return func(s *Kafka[T]) { s.log = log }
}

// NewKafka creates a Kafka sink producing to topic.
func NewKafka[T any](producer sarama.SyncProducer, topic string, opts ...KafkaOption[T]) *Kafka[T] {
	s := &Kafka[T]{
		producer: producer,
		topic:    topic,
		encode:   JSONEncoder[T],
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements batcher.Consumer.
func (s *Kafka[T]) Consume(batch []T) error {
	var headers []sarama.RecordHeader
	if s.ids != nil {
		headers = []sarama.RecordHeader{{
			Key:   []byte(batchIDHeader),
			Value: []byte(strconv.FormatInt(s.ids.Generate(), 10)),
		}}
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(batch))
	for _, item := range batch {
		payload, err := s.encode(item)
		if err != nil {
			s.log.Error("kafka sink encode failed",
				zap.String("topic", s.topic), zap.Error(err))
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic:   s.topic,
			Value:   sarama.ByteEncoder(payload),
			Headers: headers,
		})
	}

	if err := s.producer.SendMessages(msgs); err != nil {
		s.log.Error("kafka sink delivery failed",
			zap.String("topic", s.topic),
			zap.Int("size", len(msgs)),
			zap.Error(err))
		return err
	}

	s.log.Debug("kafka sink delivered",
		zap.String("topic", s.topic), zap.Int("size", len(msgs)))
	return nil
}

// NewSyncProducer builds a sarama SyncProducer from Kafka settings.
func NewSyncProducer(cfg *settings.Kafka) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	if cfg.FlushFrequency > 0 {
		config.Producer.Flush.Frequency = utils.ToDurationMs(cfg.FlushFrequency)
	}
	if cfg.FlushBytes > 0 {
		config.Producer.Flush.Bytes = cfg.FlushBytes
	}
	if cfg.MaxMessageBytes > 0 {
		config.Producer.MaxMessageBytes = cfg.MaxMessageBytes
	}
	if cfg.Timeout > 0 {
		config.Producer.Timeout = utils.ToDuration(cfg.Timeout)
	}
	if cfg.MaxRetries > 0 {
		config.Producer.Retry.Max = cfg.MaxRetries
	}
	if cfg.RetryBackoff > 0 {
		config.Producer.Retry.Backoff = utils.ToDurationMs(cfg.RetryBackoff)
	}

	return sarama.NewSyncProducer(cfg.Brokers, config)
}

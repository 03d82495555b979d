// Package sink provides batcher consumers that deliver each batch to a
// downstream system in a single round trip.
package sink

import (
	"encoding/json"
)

// Encoder turns one item into its wire payload.
type Encoder[T any] func(item T) ([]byte, error)

// JSONEncoder is the default Encoder.
func JSONEncoder[T any](item T) ([]byte, error) {
	return json.Marshal(item)
}

// IDGenerator stamps batches with a unique id. Satisfied by
// unique.SnowflakeNode.
type IDGenerator interface {
	Generate() int64
}

// Envelope carries an item payload together with its batch id and position
// for sinks that keep the id in-band.
type Envelope struct {
	BatchID int64           `json:"batch_id" bson:"batch_id"`
	Seq     int             `json:"seq" bson:"seq"`
	Payload json.RawMessage `json:"payload" bson:"payload"`
}

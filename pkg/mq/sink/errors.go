package sink

import "github.com/pkg/errors"

var (
	ErrBulkFailed      = errors.New("sink: bulk request failed")
	ErrBulkItemsFailed = errors.New("sink: bulk request had failed items")
)

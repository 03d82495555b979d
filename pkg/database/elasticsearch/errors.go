package elasticsearch

import "github.com/pkg/errors"

var (
	ErrConnectionFailed = errors.New("elasticsearch: connection failed")
	ErrPingFailed       = errors.New("elasticsearch: ping failed")
)

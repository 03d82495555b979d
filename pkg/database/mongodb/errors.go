package mongodb

import "github.com/pkg/errors"

var (
	ErrConnectionFailed = errors.New("mongodb: connection failed")
	ErrPingFailed       = errors.New("mongodb: ping failed")
)

package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be handed a
// single node, cluster or failover client interchangeably.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys.
const Nil = redis.Nil

// TxFailedErr is returned by EXEC when a watched key changed.
const TxFailedErr = redis.TxFailedErr

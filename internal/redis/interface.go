package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so backends depend on this package
// rather than a concrete client type
type Client interface {
	redis.UniversalClient
}

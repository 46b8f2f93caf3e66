package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so single, cluster, and test clients
// are interchangeable
type Client interface {
	redis.UniversalClient
}

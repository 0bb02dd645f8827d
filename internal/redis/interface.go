package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every deployment mode provides. Record
// stores depend on this instead of a concrete client.
type Client interface {
	redis.UniversalClient
}

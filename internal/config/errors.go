package config

import "errors"

// Sentinel errors for the Redis settings; the remaining config files carry
// their own validation messages inline.
var (
	ErrRedisAddrMissing = errors.New("REDIS_ADDR must not be empty")
	ErrInvalidRedisDB   = errors.New("REDIS_DB is not an integer")
)

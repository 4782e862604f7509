package config

import "errors"

var (
	ErrRedisAddrMissing = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB   = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidUTCOffset = errors.New("SCHEDULE_UTC_OFFSET_MINUTES must be an integer between -720 and 840")
)

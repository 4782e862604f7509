package repository

import "errors"

var (
	ErrRedisConnection    = errors.New("redis connection error")
	ErrInvalidRoutineData = errors.New("invalid routine data")
)

package service

import "errors"

var (
	ErrNotFound = errors.New("pokemon not found")
	ErrUpstream = errors.New("upstream api error")
)

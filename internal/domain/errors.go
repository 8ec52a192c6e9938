package domain

import "errors"

var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInsightUnavailable = errors.New("insight generation unavailable")
)

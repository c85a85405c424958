package service

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrStoreNil        = errors.New("task store is nil")
	ErrServiceClosed   = errors.New("task service is closed")
)

package dlist

import "errors"

var (
	ErrEmptyCollection = errors.New("empty collection")
	ErrNotFound        = errors.New("value not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

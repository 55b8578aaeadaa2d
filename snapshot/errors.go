package snapshot

import "errors"

var (
	ErrEmptySnapshot      = errors.New("empty snapshot")
	ErrCollectionNotFound = errors.New("collection not found")
)

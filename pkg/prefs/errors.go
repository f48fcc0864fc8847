package prefs

import "errors"

var (
	ErrEmptyKey              = errors.New("prefs: empty key")
	ErrReadStore             = errors.New("prefs: failed to read store")
	ErrWriteStore            = errors.New("prefs: failed to write store")
	ErrFailedToParseRedisURL = errors.New("prefs: failed to parse redis connection string")
	ErrRedisNotReady         = errors.New("prefs: redis did not become ready within the given time period")
)

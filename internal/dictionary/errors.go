package dictionary

import "errors"

var (
	ErrNotFound         = errors.New("word not found")
	ErrDuplicateWord    = errors.New("word already exists")
	ErrCapacityExceeded = errors.New("dictionary is full")
	ErrEmptyDictionary  = errors.New("dictionary is empty")
	ErrInvalidWord      = errors.New("invalid word")
)

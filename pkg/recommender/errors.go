package recommender

import "errors"

var (
	ErrInvalidArgument = errors.New("recommender: invalid argument")
	ErrUnknownCategory = errors.New("recommender: unknown category")
)

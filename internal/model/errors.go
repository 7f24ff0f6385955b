package model

import "errors"

var (
	ErrInvalidProbability = errors.New("invalid probability")
	ErrInvalidTimes       = errors.New("invalid times")
	ErrHistoryNotFound    = errors.New("history entry not found")
)

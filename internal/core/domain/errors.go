package domain

import "errors"

var (
	ErrEstimateNotFound = errors.New("estimate not found")
)

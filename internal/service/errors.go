package service

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenIsExpired = errors.New("token is expired")

	ErrValidationMissingLocalID       = errors.New("missing or non-positive local id")
	ErrValidationMissingName          = errors.New("missing deck name")
	ErrValidationMissingDeckRef       = errors.New("missing or non-positive deck reference")
	ErrValidationMissingCardSides     = errors.New("missing front or back text")
	ErrValidationMissingVocabularyRef = errors.New("missing or non-positive vocabulary reference")
	ErrValidationUnknownVocabularyRef = errors.New("vocabulary reference does not resolve")
	ErrValidationMissingSessionFields = errors.New("missing session type or result")
	ErrValidationMissingCreatedAt     = errors.New("missing created at timestamp")
	ErrValidationNegativeTimeSpent    = errors.New("negative time spent")
)

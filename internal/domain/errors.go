package domain

import "errors"

var (
	ErrInvalidRequestBody = errors.New("request body does not match expected schema")
	ErrEmptyBatch         = errors.New("batch contains no items")
	ErrBatchTooLarge      = errors.New("batch exceeds maximum allowed size")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrRateLimited        = errors.New("too many requests")
	ErrMissingExtracted   = errors.New("extracted record is required")
)

package gerr

import "errors"

var (
	ErrAggregation    = errors.New("dashboard aggregation failed")
	ErrUnauthorized   = errors.New("not authenticated")
	ErrForbidden      = errors.New("permission denied")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidLimit   = errors.New("invalid limit")
)

package tenant

import "errors"

var (
	ErrNotFound   = errors.New("tenant not found")
	ErrValidation = errors.New("validation error")
	ErrSlugTaken  = errors.New("tenant slug already exists")
)

package project

import "errors"

var (
	ErrNotFound           = errors.New("project not found")
	ErrCodeTaken          = errors.New("project code already in use")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAssignmentNotFound = errors.New("trade assignment not found")
)

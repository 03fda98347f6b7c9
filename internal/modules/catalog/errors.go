package catalog

import "errors"

var (
	ErrTradeNotFound       = errors.New("trade not found")
	ErrPhaseNotFound       = errors.New("phase not found")
	ErrProjectTypeNotFound = errors.New("project type not found")
	ErrUnknownPhase        = errors.New("phase id not in tenant catalog")
)

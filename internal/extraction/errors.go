package extraction

import "errors"

var (
	ErrNoSources         = errors.New("no sources provided")
	ErrUnknownSourceKind = errors.New("unknown source kind")
	ErrInvalidPayload    = errors.New("invalid payload")
)

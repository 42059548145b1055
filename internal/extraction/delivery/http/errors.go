package http

import (
	"coursepilot/internal/extraction"
	pkgErrors "coursepilot/pkg/errors"
)

var (
	errNoSources          = pkgErrors.NewHTTPError(400, "At least one source is required")
	errUnknownSourceKind  = pkgErrors.NewHTTPError(400, "Unknown source kind")
	errInvalidPayload     = pkgErrors.NewHTTPError(400, "Invalid request payload")
	errSomethingWentWrong = pkgErrors.NewHTTPError(500, "Something went wrong")
)

func (h *handler) mapError(err error) error {
	switch err {
	case extraction.ErrNoSources:
		return errNoSources
	case extraction.ErrUnknownSourceKind:
		return errUnknownSourceKind
	case extraction.ErrInvalidPayload:
		return errInvalidPayload
	default:
		return errSomethingWentWrong
	}
}

// Package server provides the live preview HTTP server for a site configuration.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/fetch"
	"github.com/jonathan/site-customizer/internal/theme"
)

// ErrNoBuild indicates no successful build is available yet
var ErrNoBuild = errors.New("no build available")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var mismatch *adapter.SchemaMismatchError
	var decodeErr *adapter.DecodeError
	var colorErr *theme.InvalidColorFormatError
	var fetchErr *fetch.Error

	switch {
	case errors.Is(err, ErrNoBuild), errors.Is(err, theme.ErrNotApplied):
		return http.StatusServiceUnavailable
	case errors.As(err, &mismatch), errors.As(err, &decodeErr), errors.As(err, &colorErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Package server provides the HTTP REST API for the job-match pipeline.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/evaluation"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/ingestion"
)

// ErrMalformedRequest indicates the request body could not be decoded.
type ErrMalformedRequest struct {
	Cause error
}

func (e *ErrMalformedRequest) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedRequest) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		malformed  *ErrMalformedRequest
		validation *ErrValidation
		noReqs     *evaluation.ErrNoRequirements
		input      *ingestion.InputError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &noReqs):
		return http.StatusUnprocessableEntity
	case errors.As(err, &input):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

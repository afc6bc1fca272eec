package controller

import (
	"errors"
	"fmt"
)

// ErrInFlight is returned when Submit is called while a request is running.
var ErrInFlight = errors.New("controller: analysis already in progress")

// ValidationError reports unusable input; no request was sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "controller: invalid review: " + e.Reason
}

// ServerError reports a non-success HTTP status from the analysis service.
type ServerError struct {
	Status int
	Err    error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("controller: server error %d", e.Status)
}

func (e *ServerError) Unwrap() error { return e.Err }

// NetworkError reports a request that could not complete or whose response
// could not be understood.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("controller: unable to reach analysis service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

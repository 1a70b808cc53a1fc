package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrFieldLocked is returned by a setter whose field is disabled in the current mode
	ErrFieldLocked = errors.New("field is locked")
	// ErrNotEditing is returned by Cancel outside of edit mode
	ErrNotEditing = errors.New("form is not in edit mode")
	// ErrSaving is returned when a submission is already in flight
	ErrSaving = errors.New("a save is already in progress")
)

// ValidationError is a local rejection raised before any remote call
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	return MsgFixFields
}

// Names returns the invalid fields in a stable order
func (e *ValidationError) Names() []Field {
	names := make([]Field, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// RemoteRejection is an error payload returned by the remote service
type RemoteRejection struct {
	Status int
	Detail string
}

func (e *RemoteRejection) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request rejected with status %d", e.Status)
}

// TransportError is a connectivity failure with no structured payload
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message resolves the inline text shown for err
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	var rejection *RemoteRejection
	var transport *TransportError
	switch {
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &rejection):
		if strings.TrimSpace(rejection.Detail) != "" {
			return rejection.Detail
		}
		return fallback
	case errors.As(err, &transport):
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// Package errors defines route2file's error codes and the structured
// error returned across the tool boundary.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidParameter indicates a missing or malformed tool argument
	InvalidParameter ErrorCode = "INVALID_PARAMETER"
	// ResourceNotFound indicates an unknown tool or resource
	ResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	// OperationFailed indicates an operation failed for an external reason
	OperationFailed ErrorCode = "OPERATION_FAILED"
	// Cancelled indicates the caller cancelled the request
	Cancelled ErrorCode = "CANCELLED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RetryWithParams suggests calling the tool again with extra arguments
	RetryWithParams FixActionType = "retry-with-params"
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Params      []string      `json:"params,omitempty"`
	Description string        `json:"description,omitempty"`
}

// RouteError represents an error with code, message, and suggestions
type RouteError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error
}

// NewRouteError creates a new RouteError
func NewRouteError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *RouteError {
	return &RouteError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// Error implements the error interface
func (e *RouteError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *RouteError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *RouteError) WithDetails(details interface{}) *RouteError {
	e.Details = details
	return e
}

// NewInvalidParameterError reports a bad tool argument. reason may be empty.
func NewInvalidParameterError(param, reason string) *RouteError {
	msg := fmt.Sprintf("invalid parameter %q", param)
	if reason != "" {
		msg += ": " + reason
	}
	return NewRouteError(InvalidParameter, msg, nil, nil).WithDetails(map[string]string{"param": param})
}

// NewResourceNotFoundError reports an unknown tool or resource.
func NewResourceNotFoundError(kind, name string) *RouteError {
	return NewRouteError(ResourceNotFound, fmt.Sprintf("%s not found: %s", kind, name), nil, nil)
}

// NewOperationError wraps a failed operation.
func NewOperationError(op string, cause error) *RouteError {
	return NewRouteError(OperationFailed, op+" failed", cause, nil)
}

// NewCancelledError reports a request abandoned by its caller.
func NewCancelledError(op string, cause error) *RouteError {
	return NewRouteError(Cancelled, op+" cancelled", cause, nil)
}

// FromContext converts a context error into a RouteError, or returns the
// error unchanged if it is not one.
func FromContext(op string, err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return NewCancelledError(op, err)
	}
	return err
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	InvalidParameter: {
		{
			Type:        RetryWithParams,
			Params:      []string{"routePath"},
			Description: "Pass routePath as a string, e.g. /dashboard/settings",
		},
	},
	OperationFailed: {
		{
			Type:        RunCommand,
			Command:     "route2file config show",
			Description: "Check the effective project root and configuration",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}

// CodeOf returns the code of the first RouteError in err's chain, or
// InternalError.
func CodeOf(err error) ErrorCode {
	var re *RouteError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return InternalError
}

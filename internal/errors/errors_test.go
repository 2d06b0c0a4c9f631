package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRouteError(t *testing.T) {
	cause := errors.New("underlying error")
	fixes := []FixAction{{Type: RunCommand, Command: "route2file config show"}}

	err := NewRouteError(OperationFailed, "resolve project root", cause, fixes)

	if err.Code != OperationFailed {
		t.Errorf("Code = %v, want %v", err.Code, OperationFailed)
	}
	if err.Message != "resolve project root" {
		t.Errorf("Message = %q, want %q", err.Message, "resolve project root")
	}
	if len(err.SuggestedFixes) != 1 {
		t.Errorf("len(SuggestedFixes) = %d, want 1", len(err.SuggestedFixes))
	}
}

func TestRouteError_Error(t *testing.T) {
	tests := []struct {
		name      string
		err       *RouteError
		wantParts []string
	}{
		{
			name:      "with cause",
			err:       NewOperationError("resolve", errors.New("getwd: permission denied")),
			wantParts: []string{"OPERATION_FAILED", "resolve failed", "permission denied"},
		},
		{
			name:      "invalid parameter with reason",
			err:       NewInvalidParameterError("routePath", "expected string"),
			wantParts: []string{"INVALID_PARAMETER", `"routePath"`, "expected string"},
		},
		{
			name:      "not found",
			err:       NewResourceNotFoundError("tool", "nope"),
			wantParts: []string{"RESOURCE_NOT_FOUND", "tool not found: nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestInvalidParameterWithoutReason(t *testing.T) {
	err := NewInvalidParameterError("name", "")
	if strings.HasSuffix(err.Message, ": ") {
		t.Errorf("Message = %q, should not end with a dangling separator", err.Message)
	}
	details, ok := err.Details.(map[string]string)
	if !ok || details["param"] != "name" {
		t.Errorf("Details = %v, want param=name", err.Details)
	}
}

func TestRouteError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewRouteError(InternalError, "something went wrong", cause, nil)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see the cause")
	}

	noCause := NewRouteError(InternalError, "x", nil, nil)
	if noCause.Unwrap() != nil {
		t.Errorf("Unwrap() on error without cause should return nil")
	}
}

func TestFromContext(t *testing.T) {
	if got := CodeOf(FromContext("resolve", context.Canceled)); got != Cancelled {
		t.Errorf("CodeOf(canceled) = %v, want %v", got, Cancelled)
	}
	wrapped := fmt.Errorf("walk: %w", context.DeadlineExceeded)
	if got := CodeOf(FromContext("resolve", wrapped)); got != Cancelled {
		t.Errorf("CodeOf(deadline) = %v, want %v", got, Cancelled)
	}

	other := errors.New("boom")
	if FromContext("resolve", other) != other {
		t.Error("non-context errors must pass through unchanged")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != InternalError {
		t.Errorf("CodeOf(plain) = %v, want %v", got, InternalError)
	}
	wrapped := fmt.Errorf("call: %w", NewResourceNotFoundError("tool", "x"))
	if got := CodeOf(wrapped); got != ResourceNotFound {
		t.Errorf("CodeOf(wrapped) = %v, want %v", got, ResourceNotFound)
	}
}

func TestGetSuggestedFixes(t *testing.T) {
	if len(GetSuggestedFixes(InvalidParameter)) == 0 {
		t.Error("InvalidParameter should have suggested fixes")
	}
	if GetSuggestedFixes(Cancelled) != nil {
		t.Error("Cancelled should have no suggested fixes")
	}
}

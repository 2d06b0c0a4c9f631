package mcp

import (
	"fmt"

	"route2file/internal/errors"
)

// requireString returns params[name], which must be a string.
func requireString(params map[string]interface{}, name string) (string, error) {
	v, ok := params[name]
	if !ok || v == nil {
		return "", errors.NewInvalidParameterError(name, "required")
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewInvalidParameterError(name, fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

// optionalString returns params[name] or "" when it is absent or null.
func optionalString(params map[string]interface{}, name string) (string, error) {
	v, ok := params[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewInvalidParameterError(name, fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

package platformerrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"todopro-server/internal/utils/platformerrors"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		name      string
		errorType platformerrors.ErrorType
		expected  int
	}{
		{"not found maps to 404", platformerrors.ErrorTypeNotFound, http.StatusNotFound},
		{"validation maps to 400", platformerrors.ErrorTypeValidation, http.StatusBadRequest},
		{"conflict maps to 409", platformerrors.ErrorTypeConflict, http.StatusConflict},
		{"unauthorized maps to 401", platformerrors.ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden maps to 403", platformerrors.ErrorTypeForbidden, http.StatusForbidden},
		{"database error maps to 500", platformerrors.ErrorTypeDatabaseError, http.StatusInternalServerError},
		{"external maps to 503", platformerrors.ErrorTypeExternal, http.StatusServiceUnavailable},
		{"internal maps to 500", platformerrors.ErrorTypeInternal, http.StatusInternalServerError},
		{"unknown maps to 500", platformerrors.ErrorType("SOMETHING"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := platformerrors.ErrorTypeToHTTPStatus(tt.errorType); got != tt.expected {
				t.Errorf("ErrorTypeToHTTPStatus(%s) = %d, want %d", tt.errorType, got, tt.expected)
			}
		})
	}
}

func TestNewError_CarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), "requestID", "req-42")

	err := platformerrors.NewError(ctx, platformerrors.LayerDomain,
		platformerrors.ErrorTypeValidation, "bad input", nil, "uuid-1")

	if err.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want %q", err.RequestID, "req-42")
	}
	if err.Layer != platformerrors.LayerDomain {
		t.Errorf("Layer = %q, want %q", err.Layer, platformerrors.LayerDomain)
	}
	if err.UUID != "uuid-1" {
		t.Errorf("UUID = %q, want %q", err.UUID, "uuid-1")
	}
}

func TestAsError_PreservesOriginalType(t *testing.T) {
	ctx := context.Background()
	inner := platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "task not found", nil, "uuid-repo")

	wrapped := platformerrors.AsError(ctx, platformerrors.LayerDomain, inner, "failed to get task")

	if wrapped.Type != platformerrors.ErrorTypeNotFound {
		t.Errorf("Type = %q, want %q", wrapped.Type, platformerrors.ErrorTypeNotFound)
	}
	if wrapped.UUID != "uuid-repo" {
		t.Errorf("UUID = %q, want %q", wrapped.UUID, "uuid-repo")
	}
	if !platformerrors.IsErrorType(wrapped, platformerrors.ErrorTypeNotFound) {
		t.Error("IsErrorType should see the preserved type through wrapping")
	}
}

func TestAsError_PlainError(t *testing.T) {
	ctx := context.Background()
	wrapped := platformerrors.AsError(ctx, platformerrors.LayerDomain, errors.New("boom"), "failed")

	if wrapped.Type != platformerrors.ErrorTypeInternal {
		t.Errorf("Type = %q, want %q", wrapped.Type, platformerrors.ErrorTypeInternal)
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestAsError_NilError(t *testing.T) {
	if got := platformerrors.AsError(context.Background(), platformerrors.LayerDomain, nil, "nothing"); got != nil {
		t.Errorf("AsError(nil) = %v, want nil", got)
	}
}

func TestIsErrorType(t *testing.T) {
	ctx := context.Background()
	notFound := platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "missing", nil, "uuid-2")

	tests := []struct {
		name      string
		err       error
		errorType platformerrors.ErrorType
		expected  bool
	}{
		{"matching type", notFound, platformerrors.ErrorTypeNotFound, true},
		{"mismatched type", notFound, platformerrors.ErrorTypeConflict, false},
		{"wrapped platform error", fmt.Errorf("outer: %w", notFound), platformerrors.ErrorTypeNotFound, true},
		{"plain error", errors.New("boom"), platformerrors.ErrorTypeNotFound, false},
		{"nil error", nil, platformerrors.ErrorTypeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := platformerrors.IsErrorType(tt.err, tt.errorType); got != tt.expected {
				t.Errorf("IsErrorType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

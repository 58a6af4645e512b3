package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	custom := "USER_ALREADY_EXISTS"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("Invalid credentials", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("taken", true, nil), http.StatusConflict, "CONFLICT"},
		{"conflict custom code", NewConflictError("taken", true, &custom), http.StatusConflict, custom},
		{"too large", NewPayloadTooLargeError("big"), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"rate limited", NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("creating user: %w", NewConflictError("Username or email already exists", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewBadRequestError("original", true, nil, []FieldError{{Field: "title", Error: "is required"}}, nil)
	copied := base.WithMessage("replaced")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, base.Errors, copied.Errors)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusRequestEntityTooLarge)))
}

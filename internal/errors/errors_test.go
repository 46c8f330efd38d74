package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AdminError
		contains []string
	}{
		{
			name:     "code and message",
			err:      New(ErrCodeAPIRequest, "request failed"),
			contains: []string{"[API-001]", "request failed"},
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeFileReadFailed, "cannot read cache", stderrors.New("permission denied")),
			contains: []string{"[IO-002]", "cannot read cache", "permission denied"},
		},
		{
			name: "with suggestions",
			err: New(ErrCodeAuthNotLoggedIn, "not logged in").
				WithSuggestion("Run 'vvadmin login' to authenticate"),
			contains: []string{"Suggestions:", "vvadmin login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestAdminError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeAPIResponse, "decode failed", cause)

	require.True(t, stderrors.Is(err, cause))

	var adminErr *AdminError
	require.True(t, stderrors.As(error(err), &adminErr))
	assert.Equal(t, ErrCodeAPIResponse, adminErr.Code)
}

func TestNewAccessDeniedError_Message(t *testing.T) {
	err := NewAccessDeniedError()

	// This exact message is shown when the backend authenticates the
	// credentials but the account is not an admin.
	assert.Equal(t, ErrCodeAuthNotAdmin, err.Code)
	assert.Equal(t, "Access denied. Admin privileges required.", err.Message)
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithSuggestions("fix the file", "or delete it")

	assert.Len(t, err.Suggestions, 2)
	assert.True(t, strings.Contains(err.Error(), "or delete it"))
}

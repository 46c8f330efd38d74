package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"plain error", stderrors.New("boom"), GeneralError},
		{"api 401", &api.APIError{Status: 401, Message: "unauthorized"}, AuthError},
		{"api 404", &api.APIError{Status: 404, Message: "not found"}, NotFound},
		{"api 500", &api.APIError{Status: 500, Message: "oops"}, NetworkError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"access denied", errors.NewAccessDeniedError(), AuthError},
		{"validation", errors.New(errors.ErrCodeValidateRecord, "bad record"), ValidationError},
		{"wrapped api error", fmt.Errorf("list failed: %w", &api.APIError{Status: 404}), NotFound},
		{"message heuristic network", stderrors.New("dial tcp: connection refused"), NetworkError},
		{"message heuristic usage", stderrors.New(`unknown command "plnas"`), UsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Success", Description(Success))
	assert.Equal(t, "Interrupted", Description(Interrupted))
	assert.Equal(t, "Unknown error", Description(99))
}

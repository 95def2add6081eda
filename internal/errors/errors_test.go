package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "not found",
			err:  NewNotFoundError("route /api/nope"),
			want: "NOT_FOUND: route /api/nope not found",
		},
		{
			name: "internal with cause",
			err:  NewInternalError("failed to summarize metrics", errors.New("empty series")),
			want: "INTERNAL_ERROR: failed to summarize metrics (empty series)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Wrapped(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("handler: %w", NewInternalError("failed", cause))

	assert.True(t, IsInternal(wrapped))
	assert.False(t, IsInternal(fmt.Errorf("handler: %w", NewNotFoundError("route /api/nope"))))
	assert.ErrorIs(t, wrapped, cause)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsInternal(nil))
}

package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(MintPending, "%s mint is pending", "free")
	require.Equal(t, "free mint is pending", err.Error())
	require.Equal(t, MintPending, err.Code)
}

func TestError_Is(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", New(AlreadyClaimed, "already claimed"))

	require.True(t, errors.Is(wrapped, Error{Code: AlreadyClaimed}))
	require.False(t, errors.Is(wrapped, Error{Code: MintPending}))

	var errx Error
	require.True(t, errors.As(wrapped, &errx))
	require.Equal(t, AlreadyClaimed, errx.Code)
}

package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	require.Equal(t, EmptyCart, KindOf(New(EmptyCart, "empty")))
	require.Equal(t, Internal, KindOf(errors.New("driver: bad connection")))
	require.Equal(t, Internal, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(Authorization, "forbidden")
	wrapped := fmt.Errorf("while updating order: %w", inner)
	require.Equal(t, Authorization, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	require.EqualError(t, New(Validation, "bad input"), "bad input")

	cause := errors.New("record not found")
	require.EqualError(t, Wrap(NotFound, "Order not found.", cause), "Order not found.")
	require.ErrorIs(t, Wrap(NotFound, "Order not found.", cause), cause)
	require.EqualError(t, Wrap(Internal, "", cause), "record not found")
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
)

func TestComplexErrorMessage(t *testing.T) {
	assert.Equal(t, "listing images", NewComplexError(ServiceUnavailable, "listing images", nil).Error())
	assert.Equal(t,
		"listing images: connection refused",
		NewComplexError(ServiceUnavailable, "listing images", errors.New("connection refused")).Error(),
	)
}

func TestHasErrorCode(t *testing.T) {
	base := NewComplexError(RemovalFailed, "failed to remove image a1", errors.New("boom"))

	type scenario struct {
		err      error
		code     ErrorCode
		expected bool
	}

	scenarios := []scenario{
		{base, RemovalFailed, true},
		{base, ServiceUnavailable, false},
		{fmt.Errorf("wrapped: %w", base), RemovalFailed, true},
		{WrapError(base), RemovalFailed, true},
		{errors.New("plain"), RemovalFailed, false},
		{nil, UsageError, false},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, HasErrorCode(s.err, s.code), fmt.Sprintf("%v", s.err))
	}
}

func TestComplexErrorUnwraps(t *testing.T) {
	err := NewComplexError(InputClosed, "reading answer", io.EOF)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, WrapError(nil))
}

func TestClassifyRemovalError(t *testing.T) {
	assert.Equal(t, ReasonImageInUse, ClassifyRemovalError(fmt.Errorf("%w: busy", cerrdefs.ErrConflict)))
	assert.Equal(t, ReasonNotFound, ClassifyRemovalError(fmt.Errorf("%w: gone", cerrdefs.ErrNotFound)))
	assert.Equal(t, ReasonServiceError, ClassifyRemovalError(errors.New("whatever")))
}

func TestImageShortID(t *testing.T) {
	image := &Image{ID: "sha256:0123456789abcdef0123"}
	assert.Equal(t, "0123456789ab", image.ShortID())
	assert.Equal(t, "a1", (&Image{ID: "a1"}).ShortID())
}

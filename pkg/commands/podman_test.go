package commands

import (
	"errors"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPodmanError(t *testing.T) {
	type scenario struct {
		err      error
		expected RemovalReason
	}

	scenarios := []scenario{
		{
			errors.New("1 error occurred:\n\t* sha256:a1: image not known"),
			ReasonNotFound,
		},
		{
			errors.New("image used by 3c5f: image is in use by a container"),
			ReasonImageInUse,
		},
		{
			errors.New("unexpected EOF"),
			ReasonServiceError,
		},
	}

	for _, s := range scenarios {
		classified := classifyPodmanError(s.err)
		assert.Equal(t, s.expected, ClassifyRemovalError(classified))
		// the original message must survive the classification
		assert.True(t, errors.Is(classified, s.err))
	}
}

func TestClassifyPodmanErrorKeepsErrdefsKinds(t *testing.T) {
	err := classifyPodmanError(errors.New("image not known"))
	assert.True(t, errors.Is(err, cerrdefs.ErrNotFound))
}

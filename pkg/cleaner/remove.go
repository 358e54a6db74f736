package cleaner

import (
	"context"

	"github.com/revsys/dic/pkg/commands"
)

// Outcome is the result of removing a single image
type Outcome struct {
	ImageID string
	Err     error
}

// RemovalError records which image the runtime refused to remove
type RemovalError struct {
	ImageID string
	Err     error
}

func (e *RemovalError) Error() string {
	return e.Err.Error()
}

func (e *RemovalError) Unwrap() error {
	return e.Err
}

// Remove force-removes each image in order, one at a time. onRemove is called
// just before each request. The first failure stops the run: images after it
// are left alone and earlier removals are not undone. The returned outcomes
// cover every image that was attempted.
func Remove(ctx context.Context, service commands.ImageService, images []*commands.Image, onRemove func(*commands.Image)) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(images))
	for _, image := range images {
		if onRemove != nil {
			onRemove(image)
		}

		if err := service.RemoveImage(ctx, image.ID, true); err != nil {
			outcomes = append(outcomes, Outcome{ImageID: image.ID, Err: err})
			return outcomes, commands.NewComplexError(
				commands.RemovalFailed,
				"failed to remove image "+image.ID,
				&RemovalError{ImageID: image.ID, Err: err},
			)
		}

		outcomes = append(outcomes, Outcome{ImageID: image.ID})
	}
	return outcomes, nil
}

package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/containers/podman/v5/pkg/bindings"
	"github.com/containers/podman/v5/pkg/bindings/images"
	"github.com/containers/podman/v5/pkg/domain/entities"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// PodmanCommand talks to Podman through its native REST API bindings
type PodmanCommand struct {
	Log  *logrus.Entry
	Host string
	conn context.Context
}

// NewPodmanCommand connects to the Podman socket at host, which should look
// like "unix:///run/user/1000/podman/podman.sock"
func NewPodmanCommand(ctx context.Context, log *logrus.Entry, host string) (*PodmanCommand, error) {
	conn, err := bindings.NewConnection(ctx, host)
	if err != nil {
		return nil, err
	}
	return &PodmanCommand{Log: log, Host: host, conn: conn}, nil
}

// ListImages returns the images known to Podman
func (c *PodmanCommand) ListImages(ctx context.Context, all bool) ([]*Image, error) {
	opts := &images.ListOptions{
		All: &all,
	}
	summaries, err := images.List(c.conn, opts)
	if err != nil {
		return nil, err
	}

	c.Log.Debugf("podman returned %d images", len(summaries))

	return lo.Map(summaries, func(summary *entities.ImageSummary, _ int) *Image {
		return &Image{
			ID:   summary.ID,
			Tags: summary.RepoTags,
			Size: summary.Size,
		}
	}), nil
}

// RemoveImage removes a single image
func (c *PodmanCommand) RemoveImage(ctx context.Context, id string, force bool) error {
	opts := &images.RemoveOptions{
		Force: &force,
	}
	_, errs := images.Remove(c.conn, []string{id}, opts)
	if len(errs) > 0 {
		return classifyPodmanError(errs[0])
	}
	return nil
}

// Close is a no-op; the bindings hold no resources beyond the connection context
func (c *PodmanCommand) Close() error {
	return nil
}

// Mode returns "podman"
func (c *PodmanCommand) Mode() string {
	return "podman"
}

// classifyPodmanError tags podman's errors with the errdefs kinds docker's
// client already uses, so callers only need to check for one set
func classifyPodmanError(err error) error {
	if code, codeErr := bindings.CheckResponseCode(err); codeErr == nil {
		switch code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", cerrdefs.ErrNotFound, err)
		case http.StatusConflict:
			return fmt.Errorf("%w: %w", cerrdefs.ErrConflict, err)
		}
	}

	// errors from a removal report arrive as plain strings
	message := err.Error()
	switch {
	case strings.Contains(message, "image not known"):
		return fmt.Errorf("%w: %w", cerrdefs.ErrNotFound, err)
	case strings.Contains(message, "in use"):
		return fmt.Errorf("%w: %w", cerrdefs.ErrConflict, err)
	}

	return err
}

package commands

import (
	"context"
	"strings"

	"github.com/docker/cli/cli/connhelper"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// DockerCommand talks to a Docker daemon (or anything speaking its API)
type DockerCommand struct {
	Log    *logrus.Entry
	Client *client.Client
	Host   string
}

// NewDockerCommand opens a client for the daemon at host
func NewDockerCommand(log *logrus.Entry, host string) (*DockerCommand, error) {
	cli, err := newDockerClient(host)
	if err != nil {
		return nil, err
	}

	return &DockerCommand{
		Log:    log,
		Client: cli,
		Host:   host,
	}, nil
}

// newDockerClient deliberately avoids client.FromEnv: it includes
// WithVersionFromEnv, which pins DOCKER_API_VERSION and turns off negotiation,
// so an old value there gets us "client version is too old" errors.
func newDockerClient(host string) (*client.Client, error) {
	opts := []client.Opt{
		client.WithTLSClientConfigFromEnv(),
		client.WithAPIVersionNegotiation(),
	}

	if strings.HasPrefix(host, "ssh://") {
		helper, err := connhelper.GetConnectionHelper(host)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithHost(helper.Host), client.WithDialContext(helper.Dialer))
	} else {
		opts = append(opts, client.WithHost(host))
	}

	return client.NewClientWithOpts(opts...)
}

// ListImages returns the images known to the daemon
func (c *DockerCommand) ListImages(ctx context.Context, all bool) ([]*Image, error) {
	summaries, err := c.Client.ImageList(ctx, image.ListOptions{All: all})
	if err != nil {
		return nil, err
	}

	c.Log.Debugf("docker returned %d images", len(summaries))

	return lo.Map(summaries, func(summary image.Summary, _ int) *Image {
		return &Image{
			ID:   summary.ID,
			Tags: summary.RepoTags,
			Size: summary.Size,
		}
	}), nil
}

// RemoveImage removes the image, pruning any untagged parents along the way
func (c *DockerCommand) RemoveImage(ctx context.Context, id string, force bool) error {
	items, err := c.Client.ImageRemove(ctx, id, image.RemoveOptions{
		Force:         force,
		PruneChildren: true,
	})
	if err != nil {
		return err
	}

	for _, item := range items {
		c.Log.WithFields(logrus.Fields{
			"untagged": item.Untagged,
			"deleted":  item.Deleted,
		}).Debug("image delete response")
	}

	return nil
}

// Close closes the underlying client
func (c *DockerCommand) Close() error {
	return c.Client.Close()
}

// Mode returns "docker"
func (c *DockerCommand) Mode() string {
	return "docker"
}

package commands

import (
	"context"

	"github.com/revsys/dic/pkg/config"
	"github.com/sirupsen/logrus"
)

// ImageService is the part of a container runtime's API we rely on. Docker and
// Podman each get an implementation, tests use MockImageService.
type ImageService interface {
	// ListImages returns every image the runtime knows about. all includes
	// intermediate images.
	ListImages(ctx context.Context, all bool) ([]*Image, error)

	// RemoveImage removes a single image by ID. force removes it even when
	// it is tagged several times or used by a stopped container.
	RemoveImage(ctx context.Context, id string, force bool) error

	// Close releases the connection to the runtime
	Close() error

	// Mode returns "docker", "podman" or "mock"
	Mode() string
}

// NewImageService finds the runtime's socket and opens a client for it.
// runtime is one of the config.Runtime* values; with config.RuntimeAuto the
// client is picked based on which socket was found.
func NewImageService(ctx context.Context, log *logrus.Entry, runtime string) (ImageService, error) {
	host, kind, err := DetectDockerHost(log)
	if err != nil {
		return nil, NewComplexError(ServiceUnavailable, "could not find a container runtime", err)
	}

	usePodman := runtime == config.RuntimePodman ||
		(runtime == config.RuntimeAuto && kind == RuntimePodman)

	var service ImageService
	if usePodman {
		service, err = NewPodmanCommand(ctx, log, host)
	} else {
		service, err = NewDockerCommand(log, host)
	}
	if err != nil {
		return nil, NewComplexError(ServiceUnavailable, "could not connect to "+host, err)
	}

	log.Infof("using %s client for %s", service.Mode(), host)
	return service, nil
}

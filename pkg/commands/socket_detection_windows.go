//go:build windows

package commands

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	DockerSocketSchema = "npipe://"
	DockerSocketPath   = "//./pipe/docker_engine"

	defaultDockerHost = DockerSocketSchema + DockerSocketPath
	podmanMachineHost = "npipe:////./pipe/podman-machine-default"
)

func detectPlatformCandidates(log *logrus.Entry) (string, RuntimeKind, error) {
	// Try Docker Desktop first
	ctx, cancel := context.WithTimeout(context.Background(), socketValidationTimeout)
	err := validateSocketFunc(ctx, defaultDockerHost)
	cancel()

	if err == nil {
		return defaultDockerHost, RuntimeDocker, nil
	}

	// Try Podman on Windows
	ctx, cancel = context.WithTimeout(context.Background(), socketValidationTimeout)
	err = validateSocketFunc(ctx, podmanMachineHost)
	cancel()

	if err == nil {
		return podmanMachineHost, RuntimePodman, nil
	}

	// Fall back to the default Docker host; listing will report the failure
	log.Debugf("no pipe answered, falling back to %s", defaultDockerHost)
	return defaultDockerHost, RuntimeDocker, nil
}

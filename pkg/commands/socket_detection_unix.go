//go:build !windows

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DockerSocketSchema = "unix://"
	DockerSocketPath   = "/var/run/docker.sock"
)

var (
	ErrNoDockerSocket = errors.New("no working Docker/Podman socket found")
)

// SocketCandidate represents a potential socket to try
type SocketCandidate struct {
	Path    string
	Runtime RuntimeKind
}

// getSocketCandidates returns all possible socket paths in priority order
func getSocketCandidates() []SocketCandidate {
	var candidates []SocketCandidate

	addCandidate := func(path string, runtime RuntimeKind) {
		if path != "" {
			candidates = append(candidates, SocketCandidate{
				Path:    DockerSocketSchema + path,
				Runtime: runtime,
			})
		}
	}

	// Standard Docker daemon socket
	addCandidate(DockerSocketPath, RuntimeDocker)

	xdgRuntime := os.Getenv("XDG_RUNTIME_DIR")
	home, _ := os.UserHomeDir()
	uid := os.Getuid()

	// Rootless Docker
	if xdgRuntime != "" {
		addCandidate(filepath.Join(xdgRuntime, "docker.sock"), RuntimeDocker)
	}
	if home != "" {
		addCandidate(filepath.Join(home, ".docker", "run", "docker.sock"), RuntimeDocker)
		// Docker Desktop
		addCandidate(filepath.Join(home, ".docker", "desktop", "docker.sock"), RuntimeDocker)
	}
	addCandidate(filepath.Join("/run", "user", strconv.Itoa(uid), "docker.sock"), RuntimeDocker)

	if home != "" {
		// Colima
		addCandidate(filepath.Join(home, ".colima", "default", "docker.sock"), RuntimeDocker)
		addCandidate(filepath.Join(home, ".colima", "docker.sock"), RuntimeDocker)
		// OrbStack
		addCandidate(filepath.Join(home, ".orbstack", "run", "docker.sock"), RuntimeDocker)
		// Lima
		addCandidate(filepath.Join(home, ".lima", "default", "sock", "docker.sock"), RuntimeDocker)
		// Rancher Desktop
		addCandidate(filepath.Join(home, ".rd", "docker.sock"), RuntimeDocker)
	}

	// Snap Docker
	addCandidate("/var/snap/docker/current/run/docker.sock", RuntimeDocker)

	// Rootless Podman
	if xdgRuntime != "" {
		addCandidate(filepath.Join(xdgRuntime, "podman", "podman.sock"), RuntimePodman)
	}
	addCandidate(filepath.Join("/run", "user", strconv.Itoa(uid), "podman", "podman.sock"), RuntimePodman)
	if home != "" {
		addCandidate(filepath.Join(home, ".local", "share", "containers", "podman", "podman.sock"), RuntimePodman)
	}

	// Rootful Podman
	addCandidate("/run/podman/podman.sock", RuntimePodman)

	return candidates
}

func detectPlatformCandidates(log *logrus.Entry) (string, RuntimeKind, error) {
	var lastErr error
	candidates := getSocketCandidates()

	for _, candidate := range candidates {
		socketPath := strings.TrimPrefix(candidate.Path, DockerSocketSchema)

		// Fast path: check if socket file exists
		if _, err := statFunc(socketPath); err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), socketValidationTimeout)
		err := validateSocketFunc(ctx, candidate.Path)
		cancel()

		if err != nil {
			log.Debugf("Socket %s exists but validation failed: %v", candidate.Path, err)
			if strings.Contains(err.Error(), "permission denied") {
				lastErr = fmt.Errorf("%s: permission denied (are you in the docker group?)", candidate.Path)
			} else {
				lastErr = fmt.Errorf("%s: %w", candidate.Path, err)
			}
			continue
		}

		log.Infof("Connected to %s runtime via %s", candidate.Runtime, candidate.Path)
		return candidate.Path, candidate.Runtime, nil
	}

	if lastErr != nil {
		return "", RuntimeUnknown, fmt.Errorf("%w: last error: %v", ErrNoDockerSocket, lastErr)
	}

	return "", RuntimeUnknown, fmt.Errorf("%w: ensure Docker or Podman is running", ErrNoDockerSocket)
}

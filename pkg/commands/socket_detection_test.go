//go:build !windows

package commands

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSocketCandidates(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/runtime")
	t.Setenv("HOME", "/home/user")

	candidates := getSocketCandidates()

	foundDocker := false
	foundPodman := false
	for _, c := range candidates {
		if c.Path == "unix:///var/run/docker.sock" {
			foundDocker = true
			assert.Equal(t, RuntimeDocker, c.Runtime)
		}
		if c.Path == "unix:///tmp/runtime/podman/podman.sock" {
			foundPodman = true
			assert.Equal(t, RuntimePodman, c.Runtime)
		}
	}

	assert.True(t, foundDocker, "Standard Docker socket should be in candidates")
	assert.True(t, foundPodman, "Rootless Podman socket should be in candidates")
	assert.Equal(t, "unix:///var/run/docker.sock", candidates[0].Path, "Docker's socket should be tried first")
}

func stubSocketChecks(t *testing.T, stat func(string) (os.FileInfo, error), validate func(context.Context, string) error) {
	t.Helper()
	oldValidate := validateSocketFunc
	oldStat := statFunc
	t.Cleanup(func() {
		validateSocketFunc = oldValidate
		statFunc = oldStat
		ResetDockerHostCache()
	})
	statFunc = stat
	validateSocketFunc = validate
	ResetDockerHostCache()
}

func TestDetectDockerHost_DOCKER_HOST_Priority(t *testing.T) {
	stubSocketChecks(t, os.Stat, func(context.Context, string) error { return errors.New("unreachable") })
	t.Setenv("DOCKER_HOST", "unix:///tmp/custom.sock")
	t.Setenv("CONTAINER_HOST", "unix:///tmp/podman.sock")

	host, runtime, err := DetectDockerHost(newDummyLog())
	assert.NoError(t, err)
	assert.Equal(t, "unix:///tmp/custom.sock", host)
	assert.Equal(t, RuntimeUnknown, runtime)
}

func TestDetectDockerHost_CONTAINER_HOST(t *testing.T) {
	stubSocketChecks(t, os.Stat, func(context.Context, string) error { return nil })
	t.Setenv("DOCKER_HOST", "")
	t.Setenv("CONTAINER_HOST", "unix:///tmp/podman.sock")

	host, runtime, err := DetectDockerHost(newDummyLog())
	assert.NoError(t, err)
	assert.Equal(t, "unix:///tmp/podman.sock", host)
	assert.Equal(t, RuntimePodman, runtime)
}

func TestDetectDockerHost_Caching(t *testing.T) {
	stubSocketChecks(t, os.Stat, func(context.Context, string) error { return nil })
	t.Setenv("DOCKER_HOST", "unix:///tmp/first.sock")

	host1, _, _ := DetectDockerHost(newDummyLog())

	// Change env var - should still return first one from cache
	t.Setenv("DOCKER_HOST", "unix:///tmp/second.sock")
	host2, _, _ := DetectDockerHost(newDummyLog())

	assert.Equal(t, "unix:///tmp/first.sock", host1)
	assert.Equal(t, host1, host2)
}

func TestDetectPlatformCandidates_Unix_Success(t *testing.T) {
	expectedPath := "unix:///run/podman/podman.sock"
	stubSocketChecks(t,
		func(name string) (os.FileInfo, error) {
			if name == "/var/run/docker.sock" || name == "/run/podman/podman.sock" {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
		func(ctx context.Context, host string) error {
			if host == expectedPath {
				return nil
			}
			return errors.New("mock failure")
		},
	)

	host, runtime, err := detectPlatformCandidates(newDummyLog())
	assert.NoError(t, err)
	assert.Equal(t, expectedPath, host)
	assert.Equal(t, RuntimePodman, runtime)
}

func TestDetectPlatformCandidates_Unix_PermissionDenied(t *testing.T) {
	stubSocketChecks(t,
		func(name string) (os.FileInfo, error) {
			if name == "/var/run/docker.sock" {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
		func(ctx context.Context, host string) error {
			return errors.New("dial unix /var/run/docker.sock: connect: permission denied")
		},
	)

	_, runtime, err := detectPlatformCandidates(newDummyLog())
	assert.ErrorIs(t, err, ErrNoDockerSocket)
	assert.Contains(t, err.Error(), "are you in the docker group?")
	assert.Equal(t, RuntimeUnknown, runtime)
}

func TestDetectPlatformCandidates_Unix_NothingFound(t *testing.T) {
	stubSocketChecks(t,
		func(name string) (os.FileInfo, error) { return nil, os.ErrNotExist },
		func(ctx context.Context, host string) error { return nil },
	)

	_, _, err := detectPlatformCandidates(newDummyLog())
	assert.ErrorIs(t, err, ErrNoDockerSocket)
	assert.Contains(t, err.Error(), "ensure Docker or Podman is running")
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	cliconfig "github.com/docker/cli/cli/config"
	ddocker "github.com/docker/cli/cli/context/docker"
	ctxstore "github.com/docker/cli/cli/context/store"
	"github.com/sirupsen/logrus"
)

// Timeout for validating socket connectivity
const socketValidationTimeout = 3 * time.Second

// RuntimeKind is our best guess at what is listening on a socket
type RuntimeKind string

const (
	RuntimeDocker  RuntimeKind = "docker"
	RuntimePodman  RuntimeKind = "podman"
	RuntimeUnknown RuntimeKind = "unknown"
)

// Cache for socket detection results
var (
	cachedDockerHost string
	cachedRuntime    RuntimeKind
	dockerHostOnce   sync.Once
	dockerHostErr    error
)

// swapped out in tests
var (
	validateSocketFunc = validateSocket
	statFunc           = os.Stat
)

// DetectDockerHost finds a working Docker/Podman socket
// Results are cached after first successful detection
func DetectDockerHost(log *logrus.Entry) (string, RuntimeKind, error) {
	dockerHostOnce.Do(func() {
		cachedDockerHost, cachedRuntime, dockerHostErr = detectDockerHostInternal(log)
	})
	return cachedDockerHost, cachedRuntime, dockerHostErr
}

// ResetDockerHostCache forgets the cached detection result
func ResetDockerHostCache() {
	dockerHostOnce = sync.Once{}
	cachedDockerHost = ""
	cachedRuntime = ""
	dockerHostErr = nil
}

func detectDockerHostInternal(log *logrus.Entry) (string, RuntimeKind, error) {
	// Priority 1: Explicit DOCKER_HOST environment variable
	if dockerHost := os.Getenv("DOCKER_HOST"); dockerHost != "" {
		log.Debugf("Using DOCKER_HOST from environment: %s", dockerHost)
		warnIfUnreachable(log, dockerHost)
		return dockerHost, RuntimeUnknown, nil
	}

	// Priority 2: CONTAINER_HOST, which is what podman-remote reads
	if containerHost := os.Getenv("CONTAINER_HOST"); containerHost != "" {
		log.Debugf("Using CONTAINER_HOST from environment: %s", containerHost)
		warnIfUnreachable(log, containerHost)
		return containerHost, RuntimePodman, nil
	}

	// Priority 3: Docker Context
	contextHost, err := getHostFromContext()
	if err != nil {
		// If DOCKER_CONTEXT was explicitly set, we should fail
		if os.Getenv("DOCKER_CONTEXT") != "" {
			return "", RuntimeUnknown, fmt.Errorf("failed to use DOCKER_CONTEXT: %w", err)
		}
		log.Debugf("Failed to get host from default context: %v", err)
	} else if contextHost != "" {
		log.Debugf("Using host from Docker context: %s", contextHost)
		warnIfUnreachable(log, contextHost)
		return contextHost, RuntimeUnknown, nil
	}

	// Priority 4: Platform-specific candidates
	return detectPlatformCandidates(log)
}

// warnIfUnreachable pings an explicitly configured host. We still use the host
// when this fails, the error surfaces properly once we try to list images.
func warnIfUnreachable(log *logrus.Entry, host string) {
	if strings.HasPrefix(host, "ssh://") {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), socketValidationTimeout)
	defer cancel()
	if err := validateSocketFunc(ctx, host); err != nil {
		log.Warnf("%s is set but not accessible: %v", host, err)
	}
}

// getHostFromContext retrieves the host from the current Docker context
func getHostFromContext() (string, error) {
	currentContext := os.Getenv("DOCKER_CONTEXT")
	if currentContext == "" {
		cf, err := cliconfig.Load(cliconfig.Dir())
		if err != nil {
			return "", err
		}
		currentContext = cf.CurrentContext
	}

	if currentContext == "" || currentContext == "default" {
		return "", nil
	}

	storeConfig := ctxstore.NewConfig(
		func() interface{} { return &ddocker.EndpointMeta{} },
		ctxstore.EndpointTypeGetter(ddocker.DockerEndpoint, func() interface{} { return &ddocker.EndpointMeta{} }),
	)

	st := ctxstore.New(cliconfig.ContextStoreDir(), storeConfig)
	md, err := st.GetMetadata(currentContext)
	if err != nil {
		return "", err
	}
	dockerEP, ok := md.Endpoints[ddocker.DockerEndpoint]
	if !ok {
		return "", nil
	}
	dockerEPMeta, ok := dockerEP.(ddocker.EndpointMeta)
	if !ok {
		return "", fmt.Errorf("expected docker.EndpointMeta, got %T", dockerEP)
	}

	return dockerEPMeta.Host, nil
}

// validateSocket attempts to connect to the Docker API at the given host
func validateSocket(ctx context.Context, host string) error {
	cli, err := newDockerClient(host)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer cli.Close()

	_, err = cli.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

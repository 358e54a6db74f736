//go:build windows

package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatformCandidates_Windows(t *testing.T) {
	type scenario struct {
		name         string
		answering    string
		expectedHost string
		expectedKind RuntimeKind
	}

	scenarios := []scenario{
		{"docker desktop", defaultDockerHost, defaultDockerHost, RuntimeDocker},
		{"podman machine", podmanMachineHost, podmanMachineHost, RuntimePodman},
		{"nothing answers", "", defaultDockerHost, RuntimeDocker},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			oldValidate := validateSocketFunc
			defer func() { validateSocketFunc = oldValidate }()

			validateSocketFunc = func(ctx context.Context, host string) error {
				if host == s.answering {
					return nil
				}
				return errors.New("mock failure")
			}

			host, kind, err := detectPlatformCandidates(newDummyLog())
			assert.NoError(t, err)
			assert.Equal(t, s.expectedHost, host)
			assert.Equal(t, s.expectedKind, kind)
		})
	}
}

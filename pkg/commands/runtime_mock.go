package commands

import (
	"context"
	"errors"
)

// MockImageService implements ImageService for testing purposes.
// Each method can be customized by setting the corresponding function field.
// If a function is not set, the method returns sensible defaults or errors.
type MockImageService struct {
	ListImagesFunc  func(ctx context.Context, all bool) ([]*Image, error)
	RemoveImageFunc func(ctx context.Context, id string, force bool) error
	CloseFunc       func() error

	// Track method calls for assertions
	Calls []MockCall
}

// MockCall records a method invocation for verification in tests.
type MockCall struct {
	Method string
	Args   []interface{}
}

// ErrMockNotImplemented is returned when a mock function is not set.
var ErrMockNotImplemented = errors.New("mock function not implemented")

// recordCall records a method call for later verification.
func (m *MockImageService) recordCall(method string, args ...interface{}) {
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
}

func (m *MockImageService) ListImages(ctx context.Context, all bool) ([]*Image, error) {
	m.recordCall("ListImages", all)
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, all)
	}
	return nil, ErrMockNotImplemented
}

func (m *MockImageService) RemoveImage(ctx context.Context, id string, force bool) error {
	m.recordCall("RemoveImage", id, force)
	if m.RemoveImageFunc != nil {
		return m.RemoveImageFunc(ctx, id, force)
	}
	return ErrMockNotImplemented
}

func (m *MockImageService) Close() error {
	m.recordCall("Close")
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockImageService) Mode() string {
	return "mock"
}

// CallsTo returns the recorded calls for a single method, in order
func (m *MockImageService) CallsTo(method string) []MockCall {
	calls := []MockCall{}
	for _, call := range m.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// WasCalled returns true if the method was called at least once.
func (m *MockImageService) WasCalled(method string) bool {
	return len(m.CallsTo(method)) > 0
}

// Verify interface compliance at compile time
var _ ImageService = (*MockImageService)(nil)
var _ ImageService = (*DockerCommand)(nil)
var _ ImageService = (*PodmanCommand)(nil)

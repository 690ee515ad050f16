package rest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/palmersample/rest/device"
)

// Connector is the surface every device REST adapter exposes.
//
// Implementations own exactly one HTTP session per device alias. All
// verbs except Connect require an established session and fail fast
// with a not-connected error otherwise.
type Connector interface {
	// Connect establishes the session. It is a no-op when the client
	// is already connected.
	Connect(ctx context.Context) error
	// Disconnect closes the session. The client is disconnected
	// afterwards even if closing the session fails.
	Disconnect() error
	// Connected reports whether a session is established.
	Connected() bool

	Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
	Post(ctx context.Context, path string, payload any, opts ...RequestOption) (*Response, error)
	Put(ctx context.Context, path string, payload any, opts ...RequestOption) (*Response, error)
	Patch(ctx context.Context, path string, payload any, opts ...RequestOption) (*Response, error)
	Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
}

// Factory builds a Connector for one of a device's connections.
type Factory func(dev *device.Config, connection string) (Connector, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a platform adapter available to Open. It is intended
// to be called from adapter package init functions and panics on
// duplicate registration.
func Register(platform string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("rest: Register factory is nil")
	}
	if _, dup := registry[platform]; dup {
		panic(fmt.Sprintf("rest: Register called twice for platform %q", platform))
	}
	registry[platform] = factory
}

// Platforms returns the sorted list of registered platform names.
func Platforms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds a Connector for the named connection of a device, using
// the adapter registered for the device's platform.
func Open(dev *device.Config, connection string) (Connector, error) {
	registryMu.RLock()
	factory, ok := registry[dev.Platform]
	registryMu.RUnlock()
	if !ok {
		return nil, NewConfigurationError(dev.Name,
			fmt.Sprintf("no adapter registered for platform '%s' (have %v)", dev.Platform, Platforms()))
	}
	return factory(dev, connection)
}

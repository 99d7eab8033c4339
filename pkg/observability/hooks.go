// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about negotiation runs, rendering,
// and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the library free of observability-framework imports and
// avoids import cycles: hooks are registered by main, not by libraries.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetNegotiationHooks(&myNegotiationHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Negotiation().OnRunStart(ctx, direction, len(items))
//	// ... negotiate ...
//	observability.Negotiation().OnRunComplete(ctx, direction, len(items), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// NegotiationHooks receives events from negotiation runs.
type NegotiationHooks interface {
	// OnRunStart records the start of a negotiation run.
	OnRunStart(ctx context.Context, direction string, itemCount int)

	// OnStep records one completed negotiation step.
	OnStep(ctx context.Context, index int, left, right, top, bottom float64)

	// OnRunComplete records the end of a negotiation run.
	OnRunComplete(ctx context.Context, direction string, itemCount int, duration time.Duration, err error)
}

// RenderHooks receives events from artifact rendering.
type RenderHooks interface {
	// OnRenderStart records the start of rendering.
	OnRenderStart(ctx context.Context, formats []string)

	// OnRenderComplete records the end of rendering.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopNegotiationHooks is a no-op implementation of NegotiationHooks.
type NoopNegotiationHooks struct{}

func (NoopNegotiationHooks) OnRunStart(context.Context, string, int)                         {}
func (NoopNegotiationHooks) OnStep(context.Context, int, float64, float64, float64, float64) {}
func (NoopNegotiationHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	negotiationHooks NegotiationHooks = NoopNegotiationHooks{}
	renderHooks      RenderHooks      = NoopRenderHooks{}
	cacheHooks       CacheHooks       = NoopCacheHooks{}
	hooksMu          sync.RWMutex
)

// SetNegotiationHooks registers custom negotiation hooks.
// This should be called once at application startup.
func SetNegotiationHooks(h NegotiationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		negotiationHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Negotiation returns the registered negotiation hooks.
func Negotiation() NegotiationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return negotiationHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	negotiationHooks = NoopNegotiationHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}

// Package observability provides hooks for metrics, tracing, and logging.
//
// The coloring pipeline and the renderers report events through small hook
// interfaces instead of depending on a specific backend. Every hook defaults
// to a no-op; a binary registers its own implementation once at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetColoringHooks(&myColoringHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Coloring().OnColorStart(ctx, "exact", vertices, edges)
//	// ... color the graph ...
//	observability.Coloring().OnColorComplete(ctx, "exact", numColors, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Coloring Hooks
// =============================================================================

// ColoringHooks receives events from coloring runs.
type ColoringHooks interface {
	OnColorStart(ctx context.Context, algorithm string, vertices, edges int)
	OnColorComplete(ctx context.Context, algorithm string, numColors int, duration time.Duration, err error)

	// OnFallback records that the exact search was refused or abandoned and
	// the heuristic named by to ran instead.
	OnFallback(ctx context.Context, from, to string, reason error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the renderers.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, inputSize int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopColoringHooks is a no-op implementation of ColoringHooks.
type NoopColoringHooks struct{}

func (NoopColoringHooks) OnColorStart(context.Context, string, int, int) {}
func (NoopColoringHooks) OnColorComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopColoringHooks) OnFallback(context.Context, string, string, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	coloringHooks ColoringHooks = NoopColoringHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetColoringHooks registers custom coloring hooks. Nil is ignored.
func SetColoringHooks(h ColoringHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		coloringHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Coloring returns the registered coloring hooks.
func Coloring() ColoringHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return coloringHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	coloringHooks = NoopColoringHooks{}
	renderHooks = NoopRenderHooks{}
}

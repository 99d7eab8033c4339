package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	n := NoopNegotiationHooks{}
	n.OnRunStart(ctx, "horizontal", 3)
	n.OnStep(ctx, 0, 0, 7, 0, 2)
	n.OnRunComplete(ctx, "horizontal", 3, time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, []string{"text"})
	r.OnRenderComplete(ctx, []string{"text"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

type testNegotiationHooks struct {
	NoopNegotiationHooks
	steps int
}

func (h *testNegotiationHooks) OnStep(context.Context, int, float64, float64, float64, float64) {
	h.steps++
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Negotiation().(NoopNegotiationHooks); !ok {
		t.Error("Negotiation() should return NoopNegotiationHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customNeg := &testNegotiationHooks{}
	SetNegotiationHooks(customNeg)
	if Negotiation() != customNeg {
		t.Error("SetNegotiationHooks should install custom hooks")
	}
	Negotiation().OnStep(context.Background(), 0, 0, 1, 0, 1)
	if customNeg.steps != 1 {
		t.Errorf("steps = %d, want 1", customNeg.steps)
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	Cache().OnCacheHit(context.Background(), "layout")
	if customCache.hits != 1 {
		t.Errorf("hits = %d, want 1", customCache.hits)
	}

	// nil registrations are ignored.
	SetNegotiationHooks(nil)
	if Negotiation() != customNeg {
		t.Error("nil hooks should not replace registered hooks")
	}

	Reset()
	if _, ok := Negotiation().(NoopNegotiationHooks); !ok {
		t.Error("Reset should restore noop hooks")
	}
}

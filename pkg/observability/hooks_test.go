package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopColoringHooks{}
	c.OnColorStart(ctx, "exact", 10, 15)
	c.OnColorComplete(ctx, "exact", 3, time.Millisecond, nil)
	c.OnFallback(ctx, "exact", "greedy", errors.New("deadline"))

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 10)
	r.OnRenderComplete(ctx, "svg", 2048, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Coloring().(NoopColoringHooks); !ok {
		t.Error("Coloring() should return NoopColoringHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customColoring := &testColoringHooks{}
	SetColoringHooks(customColoring)
	if Coloring() != customColoring {
		t.Error("SetColoringHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Coloring().(NoopColoringHooks); !ok {
		t.Error("Reset() should restore NoopColoringHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testColoringHooks{}
	SetColoringHooks(custom)
	SetColoringHooks(nil)

	if Coloring() != custom {
		t.Error("SetColoringHooks(nil) should be ignored")
	}
}

type testColoringHooks struct{ NoopColoringHooks }
type testRenderHooks struct{ NoopRenderHooks }

package async

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLatestGuardSupersedesOlderGenerations(t *testing.T) {
	var guard LatestGuard

	first := guard.Next()
	if !guard.Latest(first) {
		t.Fatalf("freshly issued generation must be latest")
	}

	second := guard.Next()
	if guard.Latest(first) {
		t.Fatalf("old generation must be superseded")
	}
	if !guard.Latest(second) {
		t.Fatalf("newest generation must be latest")
	}
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	debounce := NewDebouncer(30 * time.Millisecond)
	var fired atomic.Int32

	for i := 0; i < 5; i++ {
		debounce.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected exactly one firing for a burst, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	debounce := NewDebouncer(20 * time.Millisecond)
	var fired atomic.Int32

	debounce.Trigger(func() { fired.Add(1) })
	debounce.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Fatalf("stopped debouncer must not fire, got %d firings", got)
	}
}

package notify

import (
	"testing"
	"time"
)

func TestPushKeepsArrivalOrder(t *testing.T) {
	svc := NewService(time.Minute, nil)
	defer svc.Close()

	first := svc.Success("Added to watchlist")
	second := svc.Error("Something went wrong")
	third := svc.Push(ToastInfo, "Synced")

	active := svc.Active()
	if len(active) != 3 {
		t.Fatalf("expected 3 active toasts, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID || active[2].ID != third.ID {
		t.Fatalf("toasts out of arrival order: %+v", active)
	}
	if active[0].Type != ToastSuccess || active[1].Type != ToastError || active[2].Type != ToastInfo {
		t.Fatalf("toast types not preserved: %+v", active)
	}
}

func TestToastIDsAreUnique(t *testing.T) {
	svc := NewService(time.Minute, nil)
	defer svc.Close()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		toast := svc.Success("x")
		if seen[toast.ID] {
			t.Fatalf("duplicate toast id %q", toast.ID)
		}
		seen[toast.ID] = true
	}
}

func TestDismissRemovesOnlyTarget(t *testing.T) {
	svc := NewService(time.Minute, nil)
	defer svc.Close()

	keep := svc.Success("keep")
	drop := svc.Success("drop")

	svc.Dismiss(drop.ID)

	active := svc.Active()
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Fatalf("expected only %q to survive, got %+v", keep.ID, active)
	}

	// Dismissing twice is a no-op.
	svc.Dismiss(drop.ID)
	if got := len(svc.Active()); got != 1 {
		t.Fatalf("repeated dismiss changed state, %d toasts", got)
	}
}

func TestToastsAutoDismissIndependently(t *testing.T) {
	svc := NewService(40*time.Millisecond, nil)
	defer svc.Close()

	svc.Success("early")
	time.Sleep(25 * time.Millisecond)
	late := svc.Success("late")

	// The first toast's window has elapsed, the second's has not.
	time.Sleep(25 * time.Millisecond)
	active := svc.Active()
	if len(active) != 1 || active[0].ID != late.ID {
		t.Fatalf("expected only the late toast, got %+v", active)
	}

	time.Sleep(40 * time.Millisecond)
	if got := len(svc.Active()); got != 0 {
		t.Fatalf("expected all toasts expired, %d remain", got)
	}
}

func TestOnChangeFiresPerTransition(t *testing.T) {
	var calls int
	svc := NewService(time.Minute, func([]Toast) { calls++ })

	toast := svc.Success("hello")
	svc.Dismiss(toast.ID)

	if calls != 2 {
		t.Fatalf("expected onChange on push and dismiss, got %d calls", calls)
	}
	svc.Close()
}

func TestCloseStopsExpiry(t *testing.T) {
	svc := NewService(20*time.Millisecond, nil)
	svc.Success("pending")
	svc.Close()

	time.Sleep(60 * time.Millisecond)
	if got := len(svc.Active()); got != 0 {
		// Close drops pending toasts along with their timers.
		t.Fatalf("expected no active toasts after close, got %d", got)
	}
}

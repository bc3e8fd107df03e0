package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays visible before its own timer
// dismisses it.
const DefaultTTL = 3 * time.Second

// ToastType selects the user-facing styling of a notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// Toast is one transient notification.
type Toast struct {
	ID      string
	Type    ToastType
	Message string
}

// Service is a FIFO toast queue. Each toast carries an independent
// countdown, so several may be visible at once and dismissal order
// does not depend on queue position.
type Service struct {
	mu       sync.Mutex
	ttl      time.Duration
	toasts   []Toast
	timers   map[string]*time.Timer
	onChange func([]Toast)
	closed   bool
}

// NewService creates a toast queue publishing the active set to
// onChange on every push and dismissal. ttl <= 0 selects the default
// 3 seconds.
func NewService(ttl time.Duration, onChange func([]Toast)) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if onChange == nil {
		onChange = func([]Toast) {}
	}
	return &Service{
		ttl:      ttl,
		timers:   make(map[string]*time.Timer),
		onChange: onChange,
	}
}

// Push enqueues a toast and arms its dismissal timer.
func (s *Service) Push(toastType ToastType, message string) Toast {
	toast := Toast{
		ID:      uuid.NewString(),
		Type:    toastType,
		Message: message,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return toast
	}
	s.toasts = append(s.toasts, toast)
	s.timers[toast.ID] = time.AfterFunc(s.ttl, func() { s.Dismiss(toast.ID) })
	active := s.activeLocked()
	s.mu.Unlock()

	s.onChange(active)
	return toast
}

// Success enqueues a success toast.
func (s *Service) Success(message string) Toast {
	return s.Push(ToastSuccess, message)
}

// Error enqueues an error toast.
func (s *Service) Error(message string) Toast {
	return s.Push(ToastError, message)
}

// Dismiss removes a toast by id. Dismissing an already-expired toast
// is a no-op.
func (s *Service) Dismiss(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	removed := false
	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			removed = true
			break
		}
	}
	active := s.activeLocked()
	s.mu.Unlock()

	if removed {
		s.onChange(active)
	}
}

// Active returns the currently visible toasts in FIFO order.
func (s *Service) Active() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked()
}

// Close stops all timers and drops pending toasts.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}

func (s *Service) activeLocked() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

package runtime

import "sync"

// Loader is a process-wide memoizing accessor for one constructed subject.
//
// Construction happens at most once under concurrent first access: the
// mutex covers the whole check-construct-store path, so two goroutines
// racing on Get never both run the constructor. A failed construction is
// not memoized; the next Get retries, which lets a caller fix the value
// source (tests do this) without tearing the process down.
type Loader[T any] struct {
	mu   sync.Mutex
	fn   func() (T, error)
	val  T
	done bool
}

// NewLoader returns a Loader that builds its value with fn on first Get.
func NewLoader[T any](fn func() (T, error)) *Loader[T] {
	return &Loader[T]{fn: fn}
}

// Get returns the cached value, constructing it first if needed.
func (l *Loader[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.val, nil
	}

	val, err := l.fn()
	if err != nil {
		var zero T

		return zero, err
	}

	l.val = val
	l.done = true

	return l.val, nil
}

// Reset drops the cached value so the next Get reconstructs it.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T

	l.val = zero
	l.done = false
}

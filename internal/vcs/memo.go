package vcs

type memoState int

const (
	notAttempted memoState = iota
	attemptedAbsent
	attemptedPresent
)

// memo caches the outcome of a computation that runs at most once,
// including the outcome "nothing there".
type memo[T any] struct {
	state memoState
	value T
}

func (m *memo[T]) get(compute func() (T, bool)) (T, bool) {
	switch m.state {
	case attemptedPresent:
		return m.value, true
	case attemptedAbsent:
		var zero T
		return zero, false
	}

	value, ok := compute()
	if ok {
		m.state, m.value = attemptedPresent, value
	} else {
		m.state = attemptedAbsent
	}
	return value, ok
}

func (m *memo[T]) attempted() bool {
	return m.state != notAttempted
}

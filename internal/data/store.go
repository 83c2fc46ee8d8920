// Package data holds the read-side entity stores. Each store is a small
// state machine (idle -> loading -> ready|error) over the shared TTL
// caches, re-entrant through Refetch. A generation counter makes forced
// refetches deterministic: a response from an older fetch never
// overwrites newer state.
package data

import (
	"sync"

	"github.com/acadpainel/academico-sync/internal/apierror"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

const msgSemUsuario = "usuário não identificado"

// machine is the state shared by every store. Callers hold mu through the
// exported accessors; loads run unlocked between beginLoad and finishLoad.
type machine struct {
	mu      sync.Mutex
	state   State
	err     *apierror.Error
	gen     uint64
	loading chan struct{} // closed when the in-flight load finishes
}

func newMachine() machine {
	return machine{state: StateIdle}
}

// beginLoad bumps the generation and flips to loading. The returned
// generation must be handed back to finishLoad.
func (m *machine) beginLoad() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.state = StateLoading
	if m.loading != nil {
		// release waiters of the superseded load; its finishLoad will
		// see a stale gen and never reach this channel
		close(m.loading)
	}
	m.loading = make(chan struct{})
	return m.gen
}

// finishLoad commits a load result unless a newer load superseded it.
// apply runs under the lock. Reports whether the result was applied.
func (m *machine) finishLoad(gen uint64, err *apierror.Error, apply func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		// a newer load owns the machine now
		return false
	}
	if m.loading != nil {
		close(m.loading)
		m.loading = nil
	}
	if err != nil {
		m.state = StateError
		m.err = err
	} else {
		m.state = StateReady
		m.err = nil
	}
	if apply != nil {
		apply()
	}
	return true
}

// abandonLoad drops an in-flight load without touching state or error.
// Used when the caller's context is done: the analogue of an unmounted
// component must not receive state updates.
func (m *machine) abandonLoad(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading != nil && gen == m.gen {
		close(m.loading)
		m.loading = nil
		m.state = StateIdle
	}
}

func (m *machine) setError(e *apierror.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateError
	m.err = e
}

func (m *machine) setReady(apply func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateReady
	m.err = nil
	if apply != nil {
		apply()
	}
}

func (m *machine) snapshot() (State, *apierror.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

// loadingChan returns the channel of the in-flight load, or nil.
func (m *machine) loadingChan() chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

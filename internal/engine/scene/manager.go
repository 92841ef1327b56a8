package scene

import (
	"sync"
	"sync/atomic"

	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
)

// Manager holds the current scene for a renderer. Regeneration builds a
// complete new scene before swapping it in, so readers see either the old
// scene or the new one and never a partial result.
type Manager struct {
	mu      sync.Mutex // serializes regenerations
	current atomic.Pointer[Scene]
}

// Result is delivered by RegenerateAsync once generation finishes.
type Result struct {
	Scene *Scene
	Err   error
}

// NewManager creates a manager with no scene.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the latest complete scene, or nil before the first
// successful regeneration.
func (m *Manager) Current() *Scene {
	return m.current.Load()
}

// Regenerate replaces the current scene with a fresh one. On error the
// previous scene stays current.
func (m *Manager) Regenerate(p Params, src terrain.Source) (*Scene, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := Generate(p, src)
	if err != nil {
		return nil, err
	}
	m.current.Store(s)
	return s, nil
}

// RegenerateAsync runs Regenerate on a new goroutine. The channel receives
// exactly one Result and is then closed.
func (m *Manager) RegenerateAsync(p Params, src terrain.Source) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		s, err := m.Regenerate(p, src)
		out <- Result{Scene: s, Err: err}
	}()
	return out
}

// Reset drops the current scene.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current.Store(nil)
}

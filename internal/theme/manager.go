package theme

import (
	"sync"
)

// Manager coordinates access to an ambient Theme. The core itself is
// stateless; this is the single injection point presentation code uses to
// install a theme for a subtree and read it back. Reads vastly outnumber
// writes.
type Manager struct {
	mu      sync.RWMutex
	current Theme
}

// NewManager allocates a Manager seeded with the provided theme.
func NewManager(t Theme) *Manager {
	return &Manager{current: t}
}

// Set replaces the managed theme wholesale.
func (m *Manager) Set(t Theme) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Current returns the managed theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

var defaultManager = NewManager(Default())

// Install sets the process-wide ambient theme.
func Install(t Theme) {
	defaultManager.Set(t)
}

// Current returns the process-wide ambient theme.
func Current() Theme {
	return defaultManager.Current()
}

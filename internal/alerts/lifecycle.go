package alerts

import (
	"sync"

	"mannwallet/internal/models"
)

// LifecycleManager owns the session-scoped set of dismissed alert IDs. The
// set is created empty at session start and is never persisted; a process
// restart clears it. Dismissals are keyed by alert ID only, so a rule that
// re-fires after dismissal stays hidden until Reset is called, even if its
// content changed.
type LifecycleManager struct {
	mu        sync.RWMutex
	dismissed map[string]struct{}
}

// NewLifecycleManager creates an empty lifecycle manager.
func NewLifecycleManager() *LifecycleManager {
	return &LifecycleManager{dismissed: make(map[string]struct{})}
}

// Dismiss hides the alert with the given ID. Calling it twice is the same as
// calling it once.
func (m *LifecycleManager) Dismiss(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dismissed[id] = struct{}{}
}

// DismissAll hides every alert in the given set.
func (m *LifecycleManager) DismissAll(alerts []models.Alert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range alerts {
		m.dismissed[a.ID] = struct{}{}
	}
}

// VisibleAlerts filters the given alerts down to those not dismissed,
// preserving order and marking the Dismissed flag on the way through.
func (m *LifecycleManager) VisibleAlerts(alerts []models.Alert) []models.Alert {
	m.mu.RLock()
	defer m.mu.RUnlock()

	visible := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if _, ok := m.dismissed[a.ID]; ok {
			continue
		}
		a.Dismissed = false
		visible = append(visible, a)
	}
	return visible
}

// Reset clears all dismissals. Called at session end or on explicit user
// request; Regenerate never calls this.
func (m *LifecycleManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dismissed = make(map[string]struct{})
}

// DismissedCount returns how many distinct alert IDs are currently hidden.
func (m *LifecycleManager) DismissedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dismissed)
}

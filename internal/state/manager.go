package state

import (
	"sync"

	"StockPulse/internal/model"
)

// Kind names the selection transition that occurred.
type Kind string

const (
	KindSymbol     Kind = "symbol"
	KindPeriod     Kind = "period"
	KindFilter     Kind = "filter"
	KindComparison Kind = "comparison"
)

// Listener receives a transition kind and the state snapshot it produced.
type Listener func(kind Kind, snapshot model.SelectionState)

// Manager is the single owner of the SelectionState. All mutations go
// through its transition methods; the mutex serializes writes so the UI only
// ever reflects the most recently initiated transition of each kind.
type Manager struct {
	mu       sync.Mutex
	state    model.SelectionState
	listener Listener
}

// NewManager creates a manager with the configured default look-back window.
// ActiveSymbol starts empty and stays empty only until the first selection.
func NewManager(defaultPeriodDays int) *Manager {
	return &Manager{
		state: model.SelectionState{PeriodDays: defaultPeriodDays},
	}
}

// OnChange registers the transition listener. One listener is enough: the
// app fans out to fetch and render from there.
func (m *Manager) OnChange(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = l
}

// Snapshot returns a copy of the current selection.
func (m *Manager) Snapshot() model.SelectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SelectSymbol sets the active symbol. The comparison symbol is left alone.
func (m *Manager) SelectSymbol(symbol string) {
	m.transition(KindSymbol, func(s *model.SelectionState) {
		s.ActiveSymbol = symbol
	})
}

// SetPeriod sets the look-back window in days.
func (m *Manager) SetPeriod(days int) {
	m.transition(KindPeriod, func(s *model.SelectionState) {
		s.PeriodDays = days
	})
}

// SetFilter sets the company filter text. Filtering is a pure local
// recomputation; no fetch follows from this transition.
func (m *Manager) SetFilter(text string) {
	m.transition(KindFilter, func(s *model.SelectionState) {
		s.FilterText = text
	})
}

// SetComparisonSymbol sets the comparison symbol. The fetch happens on an
// explicit compare action, not here.
func (m *Manager) SetComparisonSymbol(symbol string) {
	m.transition(KindComparison, func(s *model.SelectionState) {
		s.ComparisonSymbol = symbol
	})
}

func (m *Manager) transition(kind Kind, mutate func(*model.SelectionState)) {
	m.mu.Lock()
	mutate(&m.state)
	snapshot := m.state
	listener := m.listener
	m.mu.Unlock()

	// Notify outside the lock so listeners may read the manager.
	if listener != nil {
		listener(kind, snapshot)
	}
}

package swipe

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ytget/swipecell/internal/model"
)

// ErrDuplicateRow is returned when a row is registered twice
var ErrDuplicateRow = errors.New("swipe: row already registered")

// Registry is the set of rows of one surface. Rows are kept in insertion order.
type Registry struct {
	mu    sync.RWMutex
	rows  map[RowID]*Row
	order []RowID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{rows: make(map[RowID]*Row)}
}

// Add registers a row
func (r *Registry) Add(row *Row) error {
	if row == nil {
		return fmt.Errorf("swipe: register nil row")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[row.id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRow, row.id)
	}
	r.rows[row.id] = row
	r.order = append(r.order, row.id)
	return nil
}

// Remove unregisters a row; unknown rows are ignored
func (r *Registry) Remove(row *Row) {
	if row == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[row.id]; !exists {
		return
	}
	delete(r.rows, row.id)
	for i, id := range r.order {
		if id == row.id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup finds a row by id
func (r *Registry) Lookup(id RowID) (*Row, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	return row, ok
}

// Len returns the number of registered rows
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Rows returns a snapshot of the registered rows
func (r *Registry) Rows() []*Row {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*Row, 0, len(r.order))
	for _, id := range r.order {
		rows = append(rows, r.rows[id])
	}
	return rows
}

// InStates returns the rows whose state is one of states
func (r *Registry) InStates(states ...model.SwipeState) []*Row {
	var matched []*Row
	for _, row := range r.Rows() {
		for _, s := range states {
			if row.state == s {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// Active returns the rows that are dragging or revealed
func (r *Registry) Active() []*Row {
	return r.InStates(model.StateDragging, model.StateLeft, model.StateRight)
}

// otherInStates returns the first row other than except in one of states
func (r *Registry) otherInStates(except *Row, states ...model.SwipeState) *Row {
	for _, row := range r.InStates(states...) {
		if row != except {
			return row
		}
	}
	return nil
}

// otherCommitted returns a row other than except that is finishing a fill or delete
func (r *Registry) otherCommitted(except *Row) *Row {
	for _, row := range r.Rows() {
		if row != except && row.coordinator.committed() {
			return row
		}
	}
	return nil
}

// HideAllExcept collapses every revealed row other than except
func (r *Registry) HideAllExcept(except *Row) {
	for _, row := range r.InStates(model.StateLeft, model.StateRight) {
		if row != except {
			row.Hide(true, nil)
		}
	}
}

// HideAll collapses every revealed row, e.g. when the surface scrolls
func (r *Registry) HideAll() {
	r.HideAllExcept(nil)
}

// WantsTap reports whether a tap should be routed to the rows: some row is
// active or in the middle of a pan
func (r *Registry) WantsTap() bool {
	for _, row := range r.Rows() {
		if row.state.IsActive() || row.panning {
			return true
		}
	}
	return false
}

// InterceptTouch hides every active row when p (surface coordinates) lands
// outside of it and reports whether the touch should be swallowed
func (r *Registry) InterceptTouch(p model.Point) bool {
	intercepted := false
	for _, row := range r.Rows() {
		if !row.state.IsActive() || row.coordinator.host == nil {
			continue
		}
		if !row.coordinator.host.Frame().Contains(p) {
			intercepted = true
		}
	}
	if intercepted {
		r.HideAll()
	}
	return intercepted
}

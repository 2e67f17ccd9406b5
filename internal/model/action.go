package model

import "sync"

// ActionStyle selects the visual treatment of an action button
type ActionStyle string

const (
	ActionStyleDefault     ActionStyle = "default"
	ActionStyleDestructive ActionStyle = "destructive"
)

// FulfillmentStyle is the outcome an action handler reports back after a fill
type FulfillmentStyle string

const (
	// FulfillmentDelete means the row leaves the dataset permanently
	FulfillmentDelete FulfillmentStyle = "delete"
	// FulfillmentReset means the strip collapses back to center
	FulfillmentReset FulfillmentStyle = "reset"
)

// String returns the string representation of FulfillmentStyle
func (f FulfillmentStyle) String() string {
	return string(f)
}

// ActionHandler is invoked when an action is triggered on the row at index
type ActionHandler func(action *Action, index int)

// Action describes one swipe action button.
// Actions compare by pointer identity.
type Action struct {
	// Identifier is an optional caller-defined key, e.g. "delete"
	Identifier string
	Title      string
	Style      ActionStyle

	// HidesWhenSelected collapses the row after the handler runs
	HidesWhenSelected bool

	Handler ActionHandler

	mu         sync.Mutex
	completion func(FulfillmentStyle)
}

// NewAction creates an action with a title and handler
func NewAction(style ActionStyle, title string, handler ActionHandler) *Action {
	return &Action{Style: style, Title: title, Handler: handler}
}

// Invoke runs the handler for the row at index
func (a *Action) Invoke(index int) {
	if a.Handler != nil {
		a.Handler(a, index)
	}
}

// SetCompletionHandler installs the callback fired by Fulfill.
// It is set by the swipe coordinator for the duration of a fill sequence.
func (a *Action) SetCompletionHandler(fn func(FulfillmentStyle)) {
	a.mu.Lock()
	a.completion = fn
	a.mu.Unlock()
}

// HasPendingFulfillment reports whether a fill sequence waits on this action
func (a *Action) HasPendingFulfillment() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.completion != nil
}

// Fulfill reports the outcome of the action. The pending completion handler
// fires at most once; later calls are no-ops.
func (a *Action) Fulfill(style FulfillmentStyle) {
	a.mu.Lock()
	fn := a.completion
	a.completion = nil
	a.mu.Unlock()

	if fn != nil {
		fn(style)
	}
}

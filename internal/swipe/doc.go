package swipe

// Package swipe is the gesture-to-state engine behind swipeable rows. A Row
// wraps one list item; its Coordinator turns pan events into content offsets
// with elastic clamping, decides expansion, settles with spring curves and
// runs action handlers, including the two-phase fill sequence that ends in a
// delete or a reset. Rows of one surface share a Registry so that only one of
// them is ever dragging or revealed. UI toolkits plug in through HostElement,
// Surface, Presentation and Animator.

package gesture

// Package gesture turns raw pointer samples from any input source (fyne drag
// events, terminal mouse motion, evdev touch reports) into a pan recognizer
// with phases, a rewritable translation baseline and release velocity.

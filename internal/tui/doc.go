// Package tui is the terminal front end of the swipe demo. It renders the
// mailbox as swipeable rows with bubbletea and lipgloss and turns mouse
// drags and key presses into swipe gestures.
package tui

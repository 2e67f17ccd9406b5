// Package ui contains the Fyne binding for swipeable rows and the demo mailbox
// window built on it. SwipeList is the surface, SwipeRow the host element each
// swipe.Row moves, and ActionsStrip the button strip revealed behind a row.
// All UI strings are localized via Localization.
package ui

package ui

import (
	"image/color"

	"fyne.io/fyne/v2/canvas"
	"go.uber.org/atomic"
)

// Haptics stands in for a vibration motor on desktops: each expansion crossing
// flashes an overlay over the list.
type Haptics struct {
	enabled func() bool
	overlay *canvas.Rectangle
	pulses  atomic.Int32
}

// NewHaptics creates the pulse overlay; enabled may be nil to always pulse
func NewHaptics(enabled func() bool) *Haptics {
	return &Haptics{
		enabled: enabled,
		overlay: canvas.NewRectangle(color.Transparent),
	}
}

// Overlay is the rectangle to stack above the list
func (h *Haptics) Overlay() *canvas.Rectangle {
	return h.overlay
}

// Pulses returns how many pulses were played
func (h *Haptics) Pulses() int {
	return int(h.pulses.Load())
}

// ExpansionFeedback implements swipe.Haptics
func (h *Haptics) ExpansionFeedback() {
	if h.enabled != nil && !h.enabled() {
		return
	}
	h.pulses.Inc()

	start := color.NRGBA{R: 255, G: 255, B: 255, A: HapticPulseAlpha}
	end := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	canvas.NewColorRGBAAnimation(start, end, HapticPulseDuration, func(c color.Color) {
		h.overlay.FillColor = c
		h.overlay.Refresh()
	}).Start()
}

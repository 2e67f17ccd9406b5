package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAnimatorScalesDuration(t *testing.T) {
	tests := []struct {
		name  string
		speed func() float64
		want  time.Duration
	}{
		{"real time", nil, 700 * time.Millisecond},
		{"double speed", func() float64 { return 2 }, 350 * time.Millisecond},
		{"quarter speed", func() float64 { return 0.25 }, 2800 * time.Millisecond},
		{"invalid speed", func() float64 { return 0 }, 700 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(tt.speed)
			assert.Equal(t, tt.want, a.scaled(700*time.Millisecond))
		})
	}
}

func TestHapticsRespectsSetting(t *testing.T) {
	test.NewTempApp(t)

	enabled := false
	h := NewHaptics(func() bool { return enabled })

	h.ExpansionFeedback()
	assert.Equal(t, 0, h.Pulses())

	enabled = true
	h.ExpansionFeedback()
	h.ExpansionFeedback()
	assert.Equal(t, 2, h.Pulses())
	assert.NotNil(t, h.Overlay())
}

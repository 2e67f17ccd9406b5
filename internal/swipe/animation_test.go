package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Endpoints(t *testing.T) {
	specs := []AnimationSpec{
		{Curve: CurveCriticallyDamped, Duration: DefaultSettleDuration},
		{Curve: CurveSpring, Duration: DefaultSettleDuration, InitialVelocity: 4},
		{Curve: CurveEaseInOut, Duration: FillDuration},
	}
	for _, spec := range specs {
		assert.Equal(t, 0.0, spec.Progress(0), "curve %d", spec.Curve)
		assert.Equal(t, 1.0, spec.Progress(spec.SettleTime()), "curve %d", spec.Curve)
		assert.Equal(t, 1.0, spec.Progress(spec.SettleTime()+time.Second), "curve %d", spec.Curve)
	}
}

func TestProgress_CriticallyDampedIsMonotonic(t *testing.T) {
	spec := AnimationSpec{Curve: CurveCriticallyDamped, Duration: DefaultSettleDuration}
	prev := 0.0
	for ms := 10; ms <= 700; ms += 10 {
		p := spec.Progress(time.Duration(ms) * time.Millisecond)
		assert.GreaterOrEqual(t, p, prev, "at %dms", ms)
		assert.LessOrEqual(t, p, 1.0, "at %dms", ms)
		prev = p
	}
	assert.Greater(t, spec.Progress(DefaultSettleDuration-time.Millisecond), 0.99)
}

func TestProgress_EaseInOutIsSymmetric(t *testing.T) {
	spec := AnimationSpec{Curve: CurveEaseInOut, Duration: time.Second}
	assert.InDelta(t, 0.5, spec.Progress(500*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.125, spec.Progress(250*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.875, spec.Progress(750*time.Millisecond), 1e-9)
}

func TestProgress_FastSpringOvershoots(t *testing.T) {
	spec := AnimationSpec{Curve: CurveSpring, Duration: DefaultSettleDuration, InitialVelocity: MaxInitialVelocity}
	assert.Greater(t, spec.Progress(100*time.Millisecond), 1.0)
	assert.Greater(t, spec.SettleTime(), time.Duration(0))
}

func TestSettleTime_NonSpringUsesDuration(t *testing.T) {
	assert.Equal(t, FillDuration, AnimationSpec{Curve: CurveEaseInOut, Duration: FillDuration}.SettleTime())
	assert.Equal(t, DefaultSettleDuration, AnimationSpec{Duration: DefaultSettleDuration}.SettleTime())
}

func TestNormalizedVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		distance float64
		expected float64
	}{
		{"tiny distance", 100, 0.2, 0},
		{"zero distance", 100, 0, 0},
		{"plain", 100, 50, 2},
		{"opposite direction", 100, -50, -2},
		{"clamped high", 10000, 10, MaxInitialVelocity},
		{"clamped low", -10000, 10, -MaxInitialVelocity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizedVelocity(tt.velocity, tt.distance); got != tt.expected {
				t.Errorf("normalizedVelocity(%v, %v) = %v, expected %v", tt.velocity, tt.distance, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 244.4, lerp(244.4, 160, 0))
	assert.Equal(t, 160.0, lerp(244.4, 160, 1))
	assert.InDelta(t, 202.2, lerp(244.4, 160, 0.5), 1e-9)
}

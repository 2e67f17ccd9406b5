package swipe

import (
	"math"
	"time"
)

// Settle timing
const (
	DefaultSettleDuration = 700 * time.Millisecond
	FillDuration          = 300 * time.Millisecond

	SpringMass      = 1.0
	SpringStiffness = 100.0
	SpringDamping   = 18.0

	// MaxInitialVelocity bounds the normalized release velocity (distances per second)
	MaxInitialVelocity = 30.0

	settleTolerance = 0.001
	// criticalSettleFactor makes (1+x)e^-x reach settleTolerance at the end of the duration
	criticalSettleFactor = 9.23
	// velocityDistanceEpsilon is the smallest distance a release velocity is normalized by
	velocityDistanceEpsilon = 0.5
)

// Curve selects the timing function of a transition
type Curve int

const (
	// CurveCriticallyDamped settles without overshoot within Duration
	CurveCriticallyDamped Curve = iota
	// CurveSpring is a mass/stiffness/damping spring seeded with InitialVelocity
	CurveSpring
	// CurveEaseInOut is a quadratic ease over Duration
	CurveEaseInOut
)

// AnimationSpec describes one transition from progress 0 to 1
type AnimationSpec struct {
	Curve    Curve
	Duration time.Duration
	// InitialVelocity is normalized by the animated distance, positive towards the target
	InitialVelocity float64
}

// SettleTime is how long the transition runs before it reports completion
func (s AnimationSpec) SettleTime() time.Duration {
	if s.Curve != CurveSpring {
		return s.Duration
	}
	omega, zeta := springParameters()
	if zeta >= 1 {
		return s.Duration
	}
	decay := zeta * omega
	_, b := s.springCoefficients()
	amplitude := math.Sqrt(1 + b*b)
	seconds := math.Log(amplitude/settleTolerance) / decay
	return time.Duration(seconds * float64(time.Second))
}

// Progress returns the covered fraction of the distance after elapsed.
// Springs may overshoot 1. At or after SettleTime the result is exactly 1.
func (s AnimationSpec) Progress(elapsed time.Duration) float64 {
	total := s.SettleTime()
	if elapsed <= 0 {
		return 0
	}
	if total <= 0 || elapsed >= total {
		return 1
	}
	t := elapsed.Seconds()

	switch s.Curve {
	case CurveSpring:
		omega, zeta := springParameters()
		if zeta >= 1 {
			return criticallyDamped(t, total.Seconds())
		}
		omegaD, b := s.springCoefficients()
		remaining := math.Exp(-zeta*omega*t) * (math.Cos(omegaD*t) + b*math.Sin(omegaD*t))
		return 1 - remaining
	case CurveEaseInOut:
		x := t / total.Seconds()
		if x < 0.5 {
			return 2 * x * x
		}
		return -1 + (4-2*x)*x
	default:
		return criticallyDamped(t, total.Seconds())
	}
}

func criticallyDamped(t, total float64) float64 {
	omega := criticalSettleFactor / total
	return 1 - (1+omega*t)*math.Exp(-omega*t)
}

func springParameters() (omega, zeta float64) {
	omega = math.Sqrt(SpringStiffness / SpringMass)
	zeta = SpringDamping / (2 * math.Sqrt(SpringStiffness*SpringMass))
	return omega, zeta
}

// springCoefficients solves the remaining-distance curve y(0)=1, y'(0)=-v0
func (s AnimationSpec) springCoefficients() (omegaD, b float64) {
	omega, zeta := springParameters()
	omegaD = omega * math.Sqrt(1-zeta*zeta)
	b = (zeta*omega - s.InitialVelocity) / omegaD
	return omegaD, b
}

// normalizedVelocity converts a release velocity into a fraction of the
// remaining distance per second. Degenerate distances yield zero.
func normalizedVelocity(velocity, distance float64) float64 {
	if math.Abs(distance) < velocityDistanceEpsilon {
		return 0
	}
	v := velocity / distance
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(-MaxInitialVelocity, math.Min(MaxInitialVelocity, v))
}

// lerp is exact at both ends
func lerp(from, to, progress float64) float64 {
	return from*(1-progress) + to*progress
}

// Transition is a running animation
type Transition interface {
	// Stop halts the animation where it is. The completion is not invoked.
	Stop()
}

// Animator is the rendering backend that drives transitions frame by frame
type Animator interface {
	// Animate calls step with the progress of spec on every frame and done once
	// when progress reaches 1. Both run on the UI goroutine.
	Animate(spec AnimationSpec, step func(progress float64), done func()) Transition
}

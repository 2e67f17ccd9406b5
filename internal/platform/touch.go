package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/ytget/swipecell/internal/model"
)

var (
	// ErrTouchUnsupported is returned where no touchscreen backend exists
	ErrTouchUnsupported = errors.New("platform: touch input is not supported on this system")
	// ErrNoTouchscreen is returned when no input device reports touch capabilities
	ErrNoTouchscreen = errors.New("platform: no touchscreen found")
)

// DeviceError describes a failed operation on an input device
type DeviceError struct {
	Op   string
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("touch %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// Event type and code values from linux/input-event-codes.h
const (
	EventSyn uint16 = 0x00
	EventKey uint16 = 0x01
	EventAbs uint16 = 0x03

	CodeSynReport      uint16 = 0x00
	CodeAbsX           uint16 = 0x00
	CodeAbsY           uint16 = 0x01
	CodeAbsMTPositionX uint16 = 0x35
	CodeAbsMTPositionY uint16 = 0x36
	CodeBtnTouch       uint16 = 0x14a
)

// RawEvent is one input event as delivered by the kernel
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
	At    time.Time
}

// SampleKind is the phase of a touch sample
type SampleKind int

const (
	SampleDown SampleKind = iota
	SampleMove
	SampleUp
)

// String returns the string representation of SampleKind
func (k SampleKind) String() string {
	switch k {
	case SampleDown:
		return "down"
	case SampleMove:
		return "move"
	case SampleUp:
		return "up"
	default:
		return "unknown"
	}
}

// Sample is one touch position in screen coordinates
type Sample struct {
	Kind  SampleKind
	Point model.Point
	At    time.Time
}

// Axis is the raw value range of an absolute axis
type Axis struct {
	Min, Max int32
}

func (a Axis) scale(value int32, size float64) float64 {
	if a.Max <= a.Min {
		return float64(value)
	}
	return float64(value-a.Min) / float64(a.Max-a.Min) * size
}

// Decoder assembles raw events into samples. Events are buffered until a
// SYN_REPORT closes the frame; only the first touch slot is followed.
type Decoder struct {
	x, y   Axis
	screen model.Size

	rawX, rawY int32
	touching   bool
	wasDown    bool
	moved      bool
	pressed    *bool
}

// NewDecoder creates a decoder mapping axis ranges onto a screen of size screen
func NewDecoder(x, y Axis, screen model.Size) *Decoder {
	return &Decoder{x: x, y: y, screen: screen}
}

// Feed consumes one event and returns a sample when a frame completes
func (d *Decoder) Feed(ev RawEvent) (Sample, bool) {
	switch ev.Type {
	case EventAbs:
		switch ev.Code {
		case CodeAbsX, CodeAbsMTPositionX:
			if d.rawX != ev.Value {
				d.rawX = ev.Value
				d.moved = true
			}
		case CodeAbsY, CodeAbsMTPositionY:
			if d.rawY != ev.Value {
				d.rawY = ev.Value
				d.moved = true
			}
		}
	case EventKey:
		if ev.Code == CodeBtnTouch {
			pressed := ev.Value != 0
			d.pressed = &pressed
		}
	case EventSyn:
		if ev.Code == CodeSynReport {
			return d.flush(ev.At)
		}
	}
	return Sample{}, false
}

func (d *Decoder) flush(at time.Time) (Sample, bool) {
	moved := d.moved
	d.moved = false
	if d.pressed != nil {
		d.touching = *d.pressed
		d.pressed = nil
	}

	sample := Sample{Point: d.point(), At: at}
	switch {
	case d.touching && !d.wasDown:
		sample.Kind = SampleDown
	case d.touching && moved:
		sample.Kind = SampleMove
	case !d.touching && d.wasDown:
		sample.Kind = SampleUp
	default:
		return Sample{}, false
	}
	d.wasDown = d.touching
	return sample, true
}

func (d *Decoder) point() model.Point {
	return model.Point{
		X: d.x.scale(d.rawX, d.screen.Width),
		Y: d.y.scale(d.rawY, d.screen.Height),
	}
}

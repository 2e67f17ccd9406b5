package platform

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipecell/internal/model"
)

type frame []RawEvent

func abs(code uint16, value int32) RawEvent { return RawEvent{Type: EventAbs, Code: code, Value: value} }
func touch(down bool) RawEvent {
	v := int32(0)
	if down {
		v = 1
	}
	return RawEvent{Type: EventKey, Code: CodeBtnTouch, Value: v}
}
func syn(at time.Time) RawEvent { return RawEvent{Type: EventSyn, Code: CodeSynReport, At: at} }

func feed(d *Decoder, frames ...frame) []Sample {
	var out []Sample
	for _, f := range frames {
		for _, ev := range f {
			if s, ok := d.Feed(ev); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func TestDecoder_TouchSequence(t *testing.T) {
	d := NewDecoder(Axis{Max: 1000}, Axis{Max: 500}, model.Size{Width: 320, Height: 160})
	start := time.Unix(100, 0)

	samples := feed(d,
		frame{abs(CodeAbsMTPositionX, 500), abs(CodeAbsMTPositionY, 250), touch(true), syn(start)},
		frame{abs(CodeAbsMTPositionX, 750), syn(start.Add(10 * time.Millisecond))},
		frame{syn(start.Add(20 * time.Millisecond))},
		frame{touch(false), syn(start.Add(30 * time.Millisecond))},
	)

	require.Len(t, samples, 3)
	assert.Equal(t, SampleDown, samples[0].Kind)
	assert.Equal(t, model.Point{X: 160, Y: 80}, samples[0].Point)
	assert.Equal(t, start, samples[0].At)

	assert.Equal(t, SampleMove, samples[1].Kind)
	assert.Equal(t, model.Point{X: 240, Y: 80}, samples[1].Point)

	assert.Equal(t, SampleUp, samples[2].Kind)
	assert.Equal(t, model.Point{X: 240, Y: 80}, samples[2].Point)
}

func TestDecoder_IgnoresMovesWithoutTouch(t *testing.T) {
	d := NewDecoder(Axis{Max: 100}, Axis{Max: 100}, model.Size{Width: 100, Height: 100})

	samples := feed(d,
		frame{abs(CodeAbsX, 10), abs(CodeAbsY, 10), syn(time.Time{})},
		frame{abs(CodeAbsX, 20), syn(time.Time{})},
	)
	assert.Empty(t, samples)
}

func TestDecoder_AxisOffset(t *testing.T) {
	d := NewDecoder(Axis{Min: 100, Max: 300}, Axis{Min: 0, Max: 0}, model.Size{Width: 400, Height: 50})

	samples := feed(d, frame{abs(CodeAbsX, 200), abs(CodeAbsY, 7), touch(true), syn(time.Time{})})
	require.Len(t, samples, 1)
	// Degenerate ranges pass raw values through
	assert.Equal(t, model.Point{X: 200, Y: 7}, samples[0].Point)
}

func TestDeviceError(t *testing.T) {
	err := error(&DeviceError{Op: "open", Path: "/dev/input/event3", Err: fs.ErrPermission})

	assert.Equal(t, "touch open /dev/input/event3: permission denied", err.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))

	var devErr *DeviceError
	require.True(t, errors.As(err, &devErr))
	assert.Equal(t, "open", devErr.Op)
}

func TestSampleKindString(t *testing.T) {
	tests := []struct {
		kind     SampleKind
		expected string
	}{
		{SampleDown, "down"},
		{SampleMove, "move"},
		{SampleUp, "up"},
		{SampleKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("SampleKind(%d).String() = %v, expected %v", tt.kind, got, tt.expected)
		}
	}
}

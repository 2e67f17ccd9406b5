//go:build linux

package platform

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/model"
)

// TouchDevice reads a Linux touchscreen through evdev
type TouchDevice struct {
	path    string
	dev     *evdev.InputDevice
	decoder *Decoder
	logger  *slog.Logger
}

// FindTouchscreen returns the path of the first device reporting BTN_TOUCH and an X axis
func FindTouchscreen() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", &DeviceError{Op: "list", Path: "/dev/input", Err: err}
	}
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		touch := isTouchscreen(dev)
		dev.Close()
		if touch {
			return p.Path, nil
		}
	}
	return "", ErrNoTouchscreen
}

func isTouchscreen(dev *evdev.InputDevice) bool {
	keys := dev.CapableEvents(evdev.EV_KEY)
	abs := dev.CapableEvents(evdev.EV_ABS)
	return slices.Contains(keys, evdev.BTN_TOUCH) &&
		(slices.Contains(abs, evdev.ABS_MT_POSITION_X) || slices.Contains(abs, evdev.ABS_X))
}

// OpenTouch opens the device at path and maps its axes onto a screen of size screen
func OpenTouch(path string, screen model.Size) (*TouchDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, &DeviceError{Op: "open", Path: path, Err: err}
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, &DeviceError{Op: "query axes", Path: path, Err: err}
	}
	x := axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	y := axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)

	logger := logging.Logger().With("device", path)
	if name, err := dev.Name(); err == nil {
		logger = logger.With("name", name)
	}
	logger.Info("touch device opened", "x_max", x.Max, "y_max", y.Max)

	return &TouchDevice{
		path:    path,
		dev:     dev,
		decoder: NewDecoder(x, y, screen),
		logger:  logger,
	}, nil
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Axis{}
}

// Run delivers samples to fn until ctx is cancelled or the device fails.
// Cancellation closes the device.
func (t *TouchDevice) Run(ctx context.Context, fn func(Sample)) error {
	stop := context.AfterFunc(ctx, func() { t.dev.Close() })
	defer stop()

	for {
		ev, err := t.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return &DeviceError{Op: "read", Path: t.path, Err: err}
		}
		raw := RawEvent{
			Type:  uint16(ev.Type),
			Code:  uint16(ev.Code),
			Value: ev.Value,
			At:    time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000),
		}
		if sample, ok := t.decoder.Feed(raw); ok {
			t.logger.Debug("touch sample", "kind", sample.Kind.String(), "x", sample.Point.X, "y", sample.Point.Y)
			fn(sample)
		}
	}
}

// Close releases the device
func (t *TouchDevice) Close() error {
	if err := t.dev.Close(); err != nil {
		return &DeviceError{Op: "close", Path: t.path, Err: err}
	}
	return nil
}

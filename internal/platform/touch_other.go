//go:build !linux

package platform

import (
	"context"

	"github.com/ytget/swipecell/internal/model"
)

// TouchDevice is unavailable off Linux
type TouchDevice struct{}

// FindTouchscreen always fails off Linux
func FindTouchscreen() (string, error) {
	return "", ErrTouchUnsupported
}

// OpenTouch always fails off Linux
func OpenTouch(path string, _ model.Size) (*TouchDevice, error) {
	return nil, &DeviceError{Op: "open", Path: path, Err: ErrTouchUnsupported}
}

func (t *TouchDevice) Run(context.Context, func(Sample)) error {
	return ErrTouchUnsupported
}

func (t *TouchDevice) Close() error {
	return nil
}

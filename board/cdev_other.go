//go:build !linux

package board

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

var errNoCdev = errors.New("board: GPIO character devices are only available on linux")

// CdevLine is unavailable on this platform.
type CdevLine struct{}

// RequestLine always fails on this platform.
func RequestLine(chip string, offset int, consumer string) (*CdevLine, error) {
	return nil, errNoCdev
}

func (c *CdevLine) Out(l gpio.Level) error { return errNoCdev }

func (c *CdevLine) Close() error { return nil }

func (c *CdevLine) String() string { return "cdev(unsupported)" }

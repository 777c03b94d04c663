//go:build linux

package board

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// CdevLine is an output line requested from a GPIO character device such
// as /dev/gpiochip0. It starts low.
type CdevLine struct {
	l    *gpiocdev.Line
	name string
}

// RequestLine requests offset on chip as an output.
func RequestLine(chip string, offset int, consumer string) (*CdevLine, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("board: request %s line %d: %w", chip, offset, err)
	}
	return &CdevLine{l: l, name: fmt.Sprintf("%s:%d", chip, offset)}, nil
}

// Out sets the line level.
func (c *CdevLine) Out(l gpio.Level) error {
	v := 0
	if l == gpio.High {
		v = 1
	}
	return c.l.SetValue(v)
}

// Close releases the line.
func (c *CdevLine) Close() error {
	return c.l.Close()
}

func (c *CdevLine) String() string {
	return c.name
}

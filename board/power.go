package board

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/gpio"

	"github.com/flavioheleno/st7796s/internal/log"
)

// Line is a GPIO output. Any periph.io gpio.PinOut satisfies it, as does
// CdevLine.
type Line interface {
	Out(l gpio.Level) error
}

// Power drives the panel supplies and reset line.
type Power struct {
	rst      Line
	supplies []Line
}

// NewPower returns a Power using rst as the reset line. supplies are the
// regulator enable lines, switched on in order and off in reverse order.
func NewPower(rst Line, supplies ...Line) (*Power, error) {
	if rst == nil {
		return nil, errors.New("board: reset line is required")
	}
	for i, s := range supplies {
		if s == nil {
			return nil, fmt.Errorf("board: supply line %d is nil", i)
		}
	}
	return &Power{rst: rst, supplies: supplies}, nil
}

// EnableSupplies drives every supply line high. On failure the lines
// already enabled are switched off again.
func (p *Power) EnableSupplies() error {
	for i, s := range p.supplies {
		if err := s.Out(gpio.High); err != nil {
			err = fmt.Errorf("board: failed to enable supply %s: %w", lineName(s, i), err)
			for j := i - 1; j >= 0; j-- {
				err = multierr.Append(err, p.supplies[j].Out(gpio.Low))
			}
			return err
		}
	}
	return nil
}

// DisableSupplies drives every supply line low in reverse order. Failures
// are logged, the remaining lines are still switched off.
func (p *Power) DisableSupplies() {
	var err error
	for i := len(p.supplies) - 1; i >= 0; i-- {
		if e := p.supplies[i].Out(gpio.Low); e != nil {
			err = multierr.Append(err, fmt.Errorf("supply %s: %w", lineName(p.supplies[i], i), e))
		}
	}
	if err != nil {
		log.Error("board: failed to disable supplies", err)
	}
}

// SetReset drives the reset line.
func (p *Power) SetReset(high bool) {
	if err := p.rst.Out(gpio.Level(high)); err != nil {
		log.Error("board: failed to drive reset line", err, "level", gpio.Level(high))
	}
}

// Sleep blocks for d.
func (p *Power) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close releases the lines that hold OS resources.
func (p *Power) Close() error {
	var err error
	for _, l := range append([]Line{p.rst}, p.supplies...) {
		if c, ok := l.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

func lineName(l Line, i int) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("#%d", i)
}

package st7796s

import (
	"time"

	"github.com/flavioheleno/st7796s/internal/log"
)

// resetHold is how long each reset level is held. The panel needs
// 5-6ms per level, this is not tunable.
const resetHold = 5 * time.Millisecond

// Power controls the panel supplies and reset line.
type Power interface {
	// EnableSupplies turns on all panel supplies.
	EnableSupplies() error
	// DisableSupplies turns off all panel supplies, best effort.
	DisableSupplies()
	// SetReset drives the reset line.
	SetReset(high bool)
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// sequencer applies the power-on and power-off timing.
type sequencer struct {
	p            Power
	powerOnDelay time.Duration
	resetDelay   time.Duration
	powered      bool
}

// powerOn enables the supplies and pulses the reset line. It does nothing
// when the panel is already powered.
func (s *sequencer) powerOn() error {
	if s.powered {
		return nil
	}

	if err := s.p.EnableSupplies(); err != nil {
		return &SupplyError{Err: err}
	}
	s.p.Sleep(s.powerOnDelay)

	// Reset pulse: high, low, high.
	s.p.SetReset(true)
	s.p.Sleep(resetHold)
	s.p.SetReset(false)
	s.p.Sleep(resetHold)
	s.p.SetReset(true)

	s.p.Sleep(s.resetDelay)

	s.powered = true
	log.Debug("st7796s powered on")
	return nil
}

// powerOff holds the panel in reset and disables the supplies. It does
// nothing when the panel is already off and never fails.
func (s *sequencer) powerOff() error {
	if !s.powered {
		return nil
	}

	s.p.SetReset(false)
	s.p.Sleep(resetHold)
	s.p.DisableSupplies()

	s.powered = false
	log.Debug("st7796s powered off")
	return nil
}

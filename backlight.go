package st7796s

import "fmt"

// Brightness limits.
const (
	MinBrightness     = 0
	MaxBrightness     = 255
	DefaultBrightness = 160
)

// Backlight is the brightness control surface of the panel.
type Backlight interface {
	Brightness() uint8
	SetBrightness(v int) error
}

// Brightness returns the last brightness successfully written.
func (d *Dev) Brightness() uint8 {
	return d.brightness
}

// SetBrightness writes the brightness register.
//
// v must be within [MinBrightness, Config.MaxBrightness] and the panel must
// be powered. Validation failures issue no command and leave the error
// latch alone.
func (d *Dev) SetBrightness(v int) error {
	if v < MinBrightness || v > d.maxBrightness {
		return fmt.Errorf("%w: %d", ErrInvalidBrightness, v)
	}
	if !d.seq.powered {
		return ErrNotReady
	}
	if err := d.ch.Write([]byte{cmdBrightness, byte(v)}); err != nil {
		return err
	}
	d.brightness = uint8(v)
	return nil
}

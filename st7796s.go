// Package st7796s controls a Sitronix ST7796S TFT panel over its display
// command set bus.
//
// See the examples for how to use this package.
package st7796s

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/st7796s/internal/log"
)

// VideoTiming describes the video mode the host drives the panel with.
type VideoTiming struct {
	PixelClockKHz int

	HActive     int
	HFrontPorch int
	HBackPorch  int
	HSyncLen    int

	VActive     int
	VFrontPorch int
	VBackPorch  int
	VSyncLen    int

	HSyncHigh bool // HSync active high
	VSyncHigh bool // VSync active high
}

// Config is the panel configuration, usually loaded by the config package.
type Config struct {
	Timing VideoTiming

	// Power sequencing delays
	PowerOnDelay time.Duration // after enabling supplies
	ResetDelay   time.Duration // after the reset pulse
	InitDelay    time.Duration // reported only, the init script has fixed delays

	// Physical size in millimeters
	WidthMM  int
	HeightMM int

	FlipHorizontal bool
	FlipVertical   bool

	// MaxBrightness caps SetBrightness (default: 255)
	MaxBrightness int
}

// Mode is the display mode reported to the host.
type Mode struct {
	Timing         VideoTiming
	WidthMM        int
	HeightMM       int
	FlipHorizontal bool
	FlipVertical   bool
	Preferred      bool

	// InitDelay is how long the host should wait after Prepare before
	// scanning out.
	InitDelay time.Duration
}

// Panel is the capability set a host display framework drives.
type Panel interface {
	Prepare() error
	Unprepare() error
	Enable() error
	Disable() error
	Mode() Mode
}

// State is the panel lifecycle state.
type State int

const (
	StateOff State = iota
	StatePreparing
	StatePrepared
	StateEnabled
	StateDisabling
	StateUnpreparing
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StatePreparing:
		return "preparing"
	case StatePrepared:
		return "prepared"
	case StateEnabled:
		return "enabled"
	case StateDisabling:
		return "disabling"
	case StateUnpreparing:
		return "unpreparing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Disable timing.
const (
	displayOffDelay = 35 * time.Millisecond
	sleepInDelay    = 125 * time.Millisecond
)

// Dev is the device handle for one ST7796S panel.
//
// Dev does no locking: the caller must serialize all calls.
type Dev struct {
	ch    *Channel
	power Power
	seq   sequencer
	cfg   Config
	state State

	id            [idLen]byte
	brightness    uint8
	maxBrightness int
}

var (
	_ Panel     = (*Dev)(nil)
	_ Backlight = (*Dev)(nil)
)

// New creates a powered-off device. cfg can be nil to use zero delays and
// an empty mode.
func New(t Transport, p Power, cfg *Config) (*Dev, error) {
	if t == nil {
		return nil, errors.New("st7796s: transport is required")
	}
	if p == nil {
		return nil, errors.New("st7796s: power control is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	maxBrightness := cfg.MaxBrightness
	if maxBrightness == 0 {
		maxBrightness = MaxBrightness
	}
	if maxBrightness < MinBrightness || maxBrightness > MaxBrightness {
		return nil, fmt.Errorf("st7796s: max brightness must be between %d and %d", MinBrightness, MaxBrightness)
	}
	if cfg.PowerOnDelay < 0 || cfg.ResetDelay < 0 || cfg.InitDelay < 0 {
		return nil, errors.New("st7796s: delays must not be negative")
	}

	return &Dev{
		ch:    NewChannel(t),
		power: p,
		seq: sequencer{
			p:            p,
			powerOnDelay: cfg.PowerOnDelay,
			resetDelay:   cfg.ResetDelay,
		},
		cfg:           *cfg,
		state:         StateOff,
		brightness:    DefaultBrightness,
		maxBrightness: maxBrightness,
	}, nil
}

// Prepare powers the panel and runs the init script. If the script fails
// the panel is powered off again before the error is returned.
func (d *Dev) Prepare() error {
	d.state = StatePreparing
	if err := d.seq.powerOn(); err != nil {
		d.state = StateOff
		return err
	}

	d.ch.ClearError()
	if err := d.runScript(); err != nil {
		log.Debug("st7796s prepare failed, powering off")
		_ = d.Unprepare()
		return err
	}

	d.state = StatePrepared
	return nil
}

// Enable turns the display on. It does not change the power state.
func (d *Dev) Enable() error {
	if err := d.ch.Write([]byte{cmdSetDisplayOn}); err != nil {
		return err
	}
	d.state = StateEnabled
	return nil
}

// Disable turns the display off and puts the panel to sleep. Both commands
// are always issued; the first error is returned.
func (d *Dev) Disable() error {
	d.state = StateDisabling

	err := d.ch.Write([]byte{cmdSetDisplayOff})
	d.power.Sleep(displayOffDelay)

	if err2 := d.ch.Write([]byte{cmdEnterSleepMode}); err == nil {
		err = err2
	}
	d.power.Sleep(sleepInDelay)

	d.state = StatePrepared
	return err
}

// Unprepare powers the panel off and clears the error latch.
func (d *Dev) Unprepare() error {
	d.state = StateUnpreparing
	err := d.seq.powerOff()
	d.ch.ClearError()
	d.state = StateOff
	return err
}

// Mode returns the configured video timing and geometry.
func (d *Dev) Mode() Mode {
	return Mode{
		Timing:         d.cfg.Timing,
		WidthMM:        d.cfg.WidthMM,
		HeightMM:       d.cfg.HeightMM,
		FlipHorizontal: d.cfg.FlipHorizontal,
		FlipVertical:   d.cfg.FlipVertical,
		InitDelay:      d.cfg.InitDelay,
		Preferred:      true,
	}
}

// ID returns the panel identifier read during the last successful Prepare.
func (d *Dev) ID() [3]byte {
	return d.id
}

// Powered reports whether the panel supplies are on.
func (d *Dev) Powered() bool {
	return d.seq.powered
}

// State returns the lifecycle state.
func (d *Dev) State() State {
	return d.state
}

// Halt powers the panel off regardless of its state. It is meant for
// teardown.
func (d *Dev) Halt() error {
	err := d.seq.powerOff()
	d.state = StateOff
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7796s.Dev{%dx%d, %s}", d.cfg.Timing.HActive, d.cfg.Timing.VActive, d.state)
}

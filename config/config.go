// Package config loads the st7796s demo configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/flavioheleno/st7796s"
)

// Config is the top-level configuration.
type Config struct {
	// LogLevel is one of "debug", "info" or "error".
	LogLevel string `yaml:"log_level"`

	Panel PanelConfig `yaml:"panel"`
	Board BoardConfig `yaml:"board"`
}

// TimingConfig is the video mode the host drives the panel with.
type TimingConfig struct {
	PixelClockKHz int `yaml:"pixel_clock_khz"`

	HActive     int `yaml:"hactive"`
	HFrontPorch int `yaml:"hfront_porch"`
	HBackPorch  int `yaml:"hback_porch"`
	HSyncLen    int `yaml:"hsync_len"`

	VActive     int `yaml:"vactive"`
	VFrontPorch int `yaml:"vfront_porch"`
	VBackPorch  int `yaml:"vback_porch"`
	VSyncLen    int `yaml:"vsync_len"`

	HSyncActiveHigh bool `yaml:"hsync_active_high"`
	VSyncActiveHigh bool `yaml:"vsync_active_high"`
}

// PanelConfig holds the panel properties.
type PanelConfig struct {
	Timing TimingConfig `yaml:"timing"`

	PowerOnDelayMs uint32 `yaml:"power_on_delay_ms"`
	ResetDelayMs   uint32 `yaml:"reset_delay_ms"`
	InitDelayMs    uint32 `yaml:"init_delay_ms"`

	WidthMM  uint32 `yaml:"panel_width_mm"`
	HeightMM uint32 `yaml:"panel_height_mm"`

	FlipHorizontal bool `yaml:"flip_horizontal"`
	FlipVertical   bool `yaml:"flip_vertical"`

	// MaxBrightness caps brightness requests. 0 means 255.
	MaxBrightness int `yaml:"max_brightness"`
}

// BoardConfig describes how the panel is wired.
type BoardConfig struct {
	// SPI is the periph.io SPI port name, empty for the default port.
	SPI string `yaml:"spi"`
	// SPIHz is the SPI clock in Hz.
	SPIHz int64 `yaml:"spi_hz"`

	// DC is the periph.io name of the Data/Command pin. It is never a
	// character device line, GPIOChip does not apply to it.
	DC string `yaml:"dc"`

	// Reset and Supplies are periph.io pin names, or line offsets on
	// GPIOChip when it is set.
	Reset    string   `yaml:"reset"`
	Supplies []string `yaml:"supplies"`

	// GPIOChip, if set, selects a GPIO character device (e.g. "gpiochip0")
	// for the reset and supply lines.
	GPIOChip string `yaml:"gpiochip,omitempty"`
}

const (
	defaultSPIHz = 10_000_000
	defaultDC    = "GPIO25"
)

// Default returns a configuration for a 320x480 panel on the default SPI port.
func Default() *Config {
	c := &Config{}
	c.Normalize()
	return c
}

// Normalize fills in zero values with defaults.
func (c *Config) Normalize() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	t := &c.Panel.Timing
	if t.HActive == 0 && t.VActive == 0 {
		*t = TimingConfig{
			PixelClockKHz: 12000,
			HActive:       320,
			HFrontPorch:   38,
			HBackPorch:    20,
			HSyncLen:      10,
			VActive:       480,
			VFrontPorch:   8,
			VBackPorch:    4,
			VSyncLen:      4,
		}
	}
	if c.Panel.MaxBrightness == 0 {
		c.Panel.MaxBrightness = st7796s.MaxBrightness
	}

	if c.Board.SPIHz == 0 {
		c.Board.SPIHz = defaultSPIHz
	}
	if c.Board.DC == "" {
		c.Board.DC = defaultDC
	}
	if c.Board.Supplies == nil {
		c.Board.Supplies = []string{}
	}
}

// Load reads and normalizes the YAML configuration at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Controller converts the panel section to the controller configuration.
func (c *Config) Controller() *st7796s.Config {
	p := c.Panel
	return &st7796s.Config{
		Timing: st7796s.VideoTiming{
			PixelClockKHz: p.Timing.PixelClockKHz,
			HActive:       p.Timing.HActive,
			HFrontPorch:   p.Timing.HFrontPorch,
			HBackPorch:    p.Timing.HBackPorch,
			HSyncLen:      p.Timing.HSyncLen,
			VActive:       p.Timing.VActive,
			VFrontPorch:   p.Timing.VFrontPorch,
			VBackPorch:    p.Timing.VBackPorch,
			VSyncLen:      p.Timing.VSyncLen,
			HSyncHigh:     p.Timing.HSyncActiveHigh,
			VSyncHigh:     p.Timing.VSyncActiveHigh,
		},
		PowerOnDelay:   time.Duration(p.PowerOnDelayMs) * time.Millisecond,
		ResetDelay:     time.Duration(p.ResetDelayMs) * time.Millisecond,
		InitDelay:      time.Duration(p.InitDelayMs) * time.Millisecond,
		WidthMM:        int(p.WidthMM),
		HeightMM:       int(p.HeightMM),
		FlipHorizontal: p.FlipHorizontal,
		FlipVertical:   p.FlipVertical,
		MaxBrightness:  p.MaxBrightness,
	}
}

// SPIFrequency returns the configured SPI clock.
func (c *Config) SPIFrequency() physic.Frequency {
	return physic.Frequency(c.Board.SPIHz) * physic.Hertz
}

package config

import (
	"fmt"
	"strconv"

	"github.com/flavioheleno/st7796s"
)

// Validate checks configuration correctness. It does not mutate cfg and
// expects Normalize to have run.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("log_level %q: must be debug, info or error", cfg.LogLevel)
	}

	// ---- panel ----

	t := cfg.Panel.Timing
	if t.PixelClockKHz <= 0 {
		return fmt.Errorf("panel.timing: pixel_clock_khz must be positive, got %d", t.PixelClockKHz)
	}
	if t.HActive <= 0 || t.VActive <= 0 {
		return fmt.Errorf("panel.timing: active area must be positive, got %dx%d", t.HActive, t.VActive)
	}
	for name, v := range map[string]int{
		"hfront_porch": t.HFrontPorch,
		"hback_porch":  t.HBackPorch,
		"hsync_len":    t.HSyncLen,
		"vfront_porch": t.VFrontPorch,
		"vback_porch":  t.VBackPorch,
		"vsync_len":    t.VSyncLen,
	} {
		if v < 0 {
			return fmt.Errorf("panel.timing: %s must not be negative, got %d", name, v)
		}
	}

	if cfg.Panel.MaxBrightness < 1 || cfg.Panel.MaxBrightness > st7796s.MaxBrightness {
		return fmt.Errorf("panel: max_brightness must be between 1 and %d, got %d", st7796s.MaxBrightness, cfg.Panel.MaxBrightness)
	}

	// ---- board ----

	b := cfg.Board
	if b.SPIHz <= 0 {
		return fmt.Errorf("board: spi_hz must be positive, got %d", b.SPIHz)
	}
	if b.Reset == "" {
		return fmt.Errorf("board: reset line is required")
	}

	// D/C is always a periph.io pin, even with a gpiochip set, so it only
	// shares a key space with reset and supplies when those are periph.io
	// pins too. key = "pin:" name or chip:offset, value = role
	owner := map[string]string{"pin:" + b.DC: "dc"}
	lines := append([]string{b.Reset}, b.Supplies...)
	for i, l := range lines {
		role := "reset"
		if i > 0 {
			role = fmt.Sprintf("supplies[%d]", i-1)
		}
		if l == "" {
			return fmt.Errorf("board: %s is empty", role)
		}

		key := "pin:" + l
		if b.GPIOChip != "" {
			off, err := LineOffset(l)
			if err != nil {
				return fmt.Errorf("board: %s: %w", role, err)
			}
			key = b.GPIOChip + ":" + strconv.Itoa(off)
		}

		if prev, exists := owner[key]; exists {
			return fmt.Errorf("board: line %q used by both %s and %s", l, prev, role)
		}
		owner[key] = role
	}

	return nil
}

// LineOffset parses a line offset on a GPIO character device.
func LineOffset(s string) (int, error) {
	off, err := strconv.Atoi(s)
	if err != nil || off < 0 {
		return 0, fmt.Errorf("line offset %q must be a non-negative integer", s)
	}
	return off, nil
}

package st7796s

import (
	"fmt"
	"time"

	"github.com/flavioheleno/st7796s/internal/log"
)

// Standard DCS opcodes.
const (
	cmdEnterSleepMode = 0x10
	cmdExitSleepMode  = 0x11
	cmdGetDisplayID   = 0x04
	cmdSetDisplayOff  = 0x28
	cmdSetDisplayOn   = 0x29
	cmdBrightness     = 0x51
)

// idLen is the size of the panel identifier read back during init.
const idLen = 3

// Entry is one step of the init script: an opcode with its parameters,
// followed by an optional settling delay.
type Entry struct {
	Name  string
	Data  []byte
	Delay time.Duration
}

// bringUp wakes the panel and unlocks the vendor command set. The panel
// id is read after it.
var bringUp = []Entry{
	{"sleep out", []byte{cmdExitSleepMode}, 150 * time.Millisecond},
	{"command set control part 1", []byte{0xF0, 0xC3}, 0},
	{"command set control part 2", []byte{0xF0, 0x96}, 0},
}

// program writes the panel registers. Order and content are fixed by the
// panel vendor.
var program = []Entry{
	{"display function control", []byte{0xB6, 0x8A, 0x07, 0x3B}, 0},
	{"blanking porch control", []byte{0xB5, 0x10, 0x04, 0x00, 0x04}, 0},
	{"frame rate control", []byte{0xB1, 0xA0, 0x10}, 0},
	{"memory data access control", []byte{0x36, 0x48}, 0},
	{"tearing effect line on", []byte{0x35, 0x00}, 0},    // v-blanking only
	{"display inversion control", []byte{0xB4, 0x01}, 0}, // 1-dot
	{"display output ctrl adjust 1", []byte{0xE8, 0x40, 0x8A, 0x00, 0x00, 0x29, 0x19, 0xA5, 0x33}, 0},
	{"power control 1", []byte{0xC0, 0x80, 0x77}, 0}, // AVDD 6.6V, AVCL -4.4V
	{"power control 2", []byte{0xC1, 0x06}, 0},
	{"power control 3", []byte{0xC2, 0xA7}, 0},
	{"vcom control", []byte{0xC5, 0x18}, 0}, // 1.1V
	{"positive gamma control", []byte{0xE0, 0xF0, 0x09, 0x0B, 0x06, 0x04, 0x15, 0x2F, 0x54, 0x42, 0x3C, 0x17, 0x14, 0x18, 0x1B}, 0},
	{"negative gamma control", []byte{0xE1, 0xF0, 0x09, 0x0B, 0x06, 0x04, 0x03, 0x2D, 0x43, 0x42, 0x3B, 0x16, 0x14, 0x17, 0x1B}, 0},
	{"maximum brightness", []byte{cmdBrightness, 0x64}, 0},
	{"backlight control", []byte{0x53, 0x2C}, 0},
	{"display output ctrl adjust 2", []byte{0xE8, 0x40, 0x82, 0x07, 0x18, 0x27, 0x0A, 0xB6, 0x33}, 0},
	{"entry mode", []byte{0xB7, 0x46}, 0},
	{"interface pixel format", []byte{0x3A, 0x66}, 0}, // 18 bit
	{"display inversion off", []byte{0x20}, 0},
	{"column address set", []byte{0x2A, 0x00, 0x00, 0x01, 0x3F}, 0},
	{"row address set", []byte{0x2B, 0x00, 0x00, 0x01, 0xE0}, 0},
	{"idle mode off", []byte{0x38}, 0},
	{"display on", []byte{cmdSetDisplayOn}, 0},
	{"command set control lock part 1", []byte{0xF0, 0x3C}, 0},
	{"command set control lock part 2", []byte{0xF0, 0x69}, 120 * time.Millisecond},
	{"sleep out", []byte{cmdExitSleepMode}, 120 * time.Millisecond},
}

// Script returns a copy of the init script in execution order. The panel
// id read happens between the "command set control part 2" entry and the
// one after it.
func Script() []Entry {
	out := make([]Entry, 0, len(bringUp)+len(program))
	for _, e := range append(append([]Entry{}, bringUp...), program...) {
		e.Data = append([]byte(nil), e.Data...)
		out = append(out, e)
	}
	return out
}

// runEntries issues each entry and its delay. Failures are left in the
// channel latch, later entries become no-ops.
func (d *Dev) runEntries(entries []Entry) {
	for _, e := range entries {
		_ = d.ch.Write(e.Data)
		if e.Delay > 0 {
			d.power.Sleep(e.Delay)
		}
	}
}

// readID negotiates the return packet size and reads the panel id. Any
// failure is latched as ErrIO wrapping the cause.
func (d *Dev) readID() error {
	_ = d.ch.SetMaxReturnPacketSize(idLen)
	b, err := d.ch.Read(cmdGetDisplayID, idLen)
	if err == nil && len(b) < idLen {
		err = fmt.Errorf("%w: got %d of %d id bytes", ErrShortRead, len(b), idLen)
	}
	if err != nil {
		err = fmt.Errorf("%w: read panel id: %w", ErrIO, err)
		log.Error("st7796s read id failed", err)
		d.ch.setErr(err)
		return err
	}
	copy(d.id[:], b)
	return nil
}

// runScript runs the full init script and returns the latched error.
func (d *Dev) runScript() error {
	d.runEntries(bringUp)
	if err := d.readID(); err != nil {
		return err
	}
	d.runEntries(program)
	if err := d.ch.Err(); err != nil {
		log.Error("st7796s init sequence failed", err)
		return err
	}
	log.Debug("st7796s init sequence done", "id", fmt.Sprintf("% X", d.id[:]))
	return nil
}

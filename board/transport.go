// Package board connects the st7796s controller to real hardware through
// periph.io: a 4-wire SPI command transport and GPIO driven power lines.
package board

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// defaultMaxReturn is the read size limit until SetMaxReturnSize is called.
const defaultMaxReturn = 1

// Transport sends display commands over 4-wire SPI. The opcode is clocked
// with D/C low and the parameters with D/C high.
type Transport struct {
	c         conn.Conn
	dc        gpio.PinOut
	maxReturn int
}

// NewSPI connects to the SPI port and returns a Transport.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided.
func NewSPI(p spi.Port, dc gpio.PinOut, maxHz physic.Frequency) (*Transport, error) {
	if maxHz == 0 {
		maxHz = 10 * physic.MegaHertz
	}
	c, err := p.Connect(maxHz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("board: failed to connect SPI: %w", err)
	}
	return NewTransport(c, dc)
}

// NewTransport wraps an already connected bus.
func NewTransport(c conn.Conn, dc gpio.PinOut) (*Transport, error) {
	if c == nil {
		return nil, errors.New("board: connection is required")
	}
	if dc == nil {
		return nil, errors.New("board: dc pin is required")
	}
	return &Transport{c: c, dc: dc, maxReturn: defaultMaxReturn}, nil
}

// WriteBytes sends cmd[0] as opcode followed by the parameter bytes.
func (t *Transport) WriteBytes(cmd []byte) error {
	if len(cmd) == 0 {
		return errors.New("board: empty command")
	}
	if err := t.sendCommand(cmd[0]); err != nil {
		return err
	}
	if len(cmd) == 1 {
		return nil
	}
	return t.sendData(cmd[1:], nil)
}

// ReadBytes sends the read opcode and clocks back n bytes, capped at the
// negotiated maximum return size.
func (t *Transport) ReadBytes(cmd byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("board: invalid read length %d", n)
	}
	if n > t.maxReturn {
		n = t.maxReturn
	}
	if err := t.sendCommand(cmd); err != nil {
		return nil, err
	}
	r := make([]byte, n)
	if err := t.sendData(make([]byte, n), r); err != nil {
		return nil, err
	}
	return r, nil
}

// SetMaxReturnSize sets the largest response ReadBytes returns.
func (t *Transport) SetMaxReturnSize(n uint16) error {
	if n == 0 {
		return errors.New("board: max return size must be positive")
	}
	t.maxReturn = int(n)
	return nil
}

// String returns a string representation of the transport.
func (t *Transport) String() string {
	return fmt.Sprintf("board.Transport{%s, dc=%s}", t.c, t.dc)
}

// sendCommand sends a single opcode byte.
func (t *Transport) sendCommand(cmd byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("board: failed to pull DC low: %w", err)
	}
	return t.c.Tx([]byte{cmd}, nil)
}

// sendData clocks parameter bytes, reading into r when it is not nil.
func (t *Transport) sendData(w, r []byte) error {
	if err := t.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("board: failed to pull DC high: %w", err)
	}
	return t.c.Tx(w, r)
}

package st7796s

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/st7796s/internal/log"
)

// MaxCommandLen is the largest command sequence (opcode and parameters)
// accepted by Channel.Write.
const MaxCommandLen = 64

const (
	opWrite        = "write"
	opRead         = "read"
	opSetMaxReturn = "set max return size"
)

// Transport is the raw display command set bus.
type Transport interface {
	// WriteBytes sends cmd[0] as opcode followed by its parameters.
	WriteBytes(cmd []byte) error
	// ReadBytes issues the read opcode and returns up to n bytes.
	ReadBytes(cmd byte, n int) ([]byte, error)
	// SetMaxReturnSize negotiates the largest packet the panel may return.
	SetMaxReturnSize(n uint16) error
}

// Channel wraps a Transport with a sticky error latch.
//
// The first failure is latched. While the latch is set every operation
// returns the latched error without touching the transport, so a long
// sequence of commands can be issued and checked once at the end.
type Channel struct {
	t   Transport
	err error
}

// NewChannel returns a Channel with a clear latch.
func NewChannel(t Transport) *Channel {
	return &Channel{t: t}
}

// Err returns the latched error, or nil.
func (c *Channel) Err() error {
	return c.err
}

// ClearError resets the latch and returns its previous value.
func (c *Channel) ClearError() error {
	err := c.err
	c.err = nil
	return err
}

// latch records err unless a failure is already latched.
func (c *Channel) latch(err error) error {
	if c.err == nil {
		c.err = err
	}
	return c.err
}

// Write sends a command sequence.
func (c *Channel) Write(data []byte) error {
	if c.err != nil {
		return c.err
	}
	if len(data) == 0 {
		return c.latch(errors.New("st7796s: empty command"))
	}
	if len(data) > MaxCommandLen {
		return c.latch(fmt.Errorf("%w: %d bytes", ErrCommandTooLong, len(data)))
	}
	if err := c.t.WriteBytes(data); err != nil {
		log.Error("dcs write failed", err, "seq", fmt.Sprintf("% X", data))
		return c.latch(&TransportError{Op: opWrite, Cmd: data[0], Err: err})
	}
	return nil
}

// Read issues a read command and returns the bytes the panel answered,
// which may be fewer than n.
func (c *Channel) Read(cmd byte, n int) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	b, err := c.t.ReadBytes(cmd, n)
	if err != nil {
		log.Error("dcs read failed", err, "cmd", fmt.Sprintf("%#02x", cmd))
		return nil, c.latch(&TransportError{Op: opRead, Cmd: cmd, Err: err})
	}
	return b, nil
}

// SetMaxReturnPacketSize negotiates the largest read response.
func (c *Channel) SetMaxReturnPacketSize(n uint16) error {
	if c.err != nil {
		return c.err
	}
	if err := c.t.SetMaxReturnSize(n); err != nil {
		log.Error("setting maximum return packet size failed", err, "size", n)
		return c.latch(&TransportError{Op: opSetMaxReturn, Err: err})
	}
	return nil
}

// setErr forces the latch to err, replacing any earlier value.
func (c *Channel) setErr(err error) {
	c.err = err
}

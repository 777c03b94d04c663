package st7796s

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when the init script cannot confirm the panel
	// identity. It wraps the dominant cause.
	ErrIO = errors.New("st7796s: i/o error")

	// ErrShortRead is returned when the panel answers a read with fewer
	// bytes than requested.
	ErrShortRead = errors.New("st7796s: short read")

	// ErrInvalidBrightness is returned for brightness requests outside
	// [MinBrightness, max brightness].
	ErrInvalidBrightness = errors.New("st7796s: invalid brightness")

	// ErrNotReady is returned by operations that need a powered panel.
	ErrNotReady = errors.New("st7796s: panel not powered")

	// ErrCommandTooLong is returned for command sequences over MaxCommandLen bytes.
	ErrCommandTooLong = errors.New("st7796s: command sequence too long")
)

// TransportError is a failure reported by the command transport.
type TransportError struct {
	Op  string // "write", "read" or "set max return size"
	Cmd byte   // opcode involved, 0 for set max return size
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == opSetMaxReturn {
		return fmt.Sprintf("st7796s: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("st7796s: %s 0x%02X: %v", e.Op, e.Cmd, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SupplyError is a failure to enable the panel power supplies.
type SupplyError struct {
	Err error
}

func (e *SupplyError) Error() string {
	return fmt.Sprintf("st7796s: failed to enable supplies: %v", e.Err)
}

func (e *SupplyError) Unwrap() error { return e.Err }

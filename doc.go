// Package st7796s controls a Sitronix ST7796S 320×480 TFT panel.
//
// The package drives the panel through its whole lifecycle: power and reset
// sequencing, the vendor init script, display on/off and backlight
// brightness. The bus and the power lines are abstracted behind the
// Transport and Power interfaces so the controller can be used with any
// hardware; the board subpackage implements both on top of periph.io.
//
// # Lifecycle
//
// A host drives the panel through the Panel interface, in this order:
//
//	Prepare   power on, reset pulse, init script
//	Enable    display on
//	Disable   display off, enter sleep
//	Unprepare reset low, supplies off
//
// If the init script fails, Prepare powers the panel off again before
// returning, so a panel is never left powered and half initialized.
//
// # Hardware Connection
//
// Connect the panel's 4-wire SPI interface to your system:
//
//	Panel Pin → System Pin
//	GND       → GND
//	VCC       → 3.3V
//	SCL       → SPI Clock (SCLK)
//	SDA       → SPI Data (MOSI)
//	DC        → GPIO (any available pin)
//	CS        → SPI Chip Select
//	RESET     → GPIO (required)
//
// Supplies switched by GPIO (load switches or regulator enables) can be
// listed in the board configuration and are sequenced by Prepare and
// Unprepare.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/st7796s"
//		"github.com/flavioheleno/st7796s/board"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		tr, _ := board.NewSPI(spiBus, gpioreg.ByName("GPIO25"), 0)
//		pwr, _ := board.NewPower(gpioreg.ByName("GPIO24"))
//
//		dev, _ := st7796s.New(tr, pwr, &st7796s.Config{
//			ResetDelay: 120 * time.Millisecond,
//		})
//		defer dev.Halt()
//
//		dev.Prepare()
//		dev.Enable()
//		dev.SetBrightness(200)
//	}
//
// # Error Handling
//
// Bus errors are sticky: the first failed transfer is latched and every
// later command is skipped until the latch is cleared. Prepare clears the
// latch before running the init script and checks it once at the end;
// Unprepare clears it as well.
//
// Errors can be inspected with errors.Is and errors.As:
//
//	ErrIO                 the panel id could not be read during init
//	ErrShortRead          the panel answered with fewer bytes than asked
//	ErrInvalidBrightness  brightness outside [0, max brightness]
//	ErrNotReady           brightness change while the panel is off
//	*TransportError       a bus write or read failed
//	*SupplyError          the supplies could not be enabled
//
// # Concurrency
//
// A Dev does no locking. All calls into one device must be serialized by
// the caller.
//
// # Datasheet
//
// For register descriptions and timing information, see the Sitronix
// ST7796S datasheet.
package st7796s

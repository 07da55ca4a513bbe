package spot

import (
	"errors"
	"time"
)

type Register byte

// SerialInterface interface allows for different SerialInterface implementations.
type SerialInterface interface {
	Read(count uint, start bool, stop bool) ([]byte, error)
	Write(data []byte, start bool, stop bool) (uint, error)

	// DataReady reports whether the sensor's ready line is asserted (low).
	DataReady() (bool, error)

	SetCS(bool) error

	Init() error

	// Close closes the interface.
	Close() error
}

// Spot provides high-level control over an INFICON Spot pressure sensor.
//
// The Spot speaks a fixed SPI command framing: result registers are read
// and written in single 4 byte transactions, sensor memory and OTP memory
// one byte at a time in 3 byte transactions. Every operation is a blocking
// sequence of bus exchanges; the driver owns the select and ready lines
// for the duration of each call and performs no internal locking. Callers
// sharing one Spot across goroutines must serialize externally.
type Spot struct {
	spi SerialInterface

	// fullscale pressure for ConvertPressure, in the caller's unit.
	// Zero means uncalibrated: conversions come out as 0.
	fullscale float64
}

// Config represents user-level configuration parameters.
type Config struct {
	Fullscale float64 // fullscale pressure for conversion; 0 leaves the sensor uncalibrated
}

// DefaultConfig provides default config. The fullscale is left at zero;
// read it from the sensor's fullscale label or set it explicitly before
// converting pressure.
func DefaultConfig() Config {
	return Config{}
}

// NewSpot constructs a Spot driver over the given SerialInterface.
func NewSpot(spi SerialInterface) *Spot {
	return &Spot{spi: spi}
}

// Initialize resets the sensor and applies the config.
// Call it once at start-up, after the bus and pins are configured.
func (s *Spot) Initialize(cfg Config) error {
	if err := s.Reset(); err != nil {
		return err
	}

	// let the sensor run its internal power-up routines
	time.Sleep(50 * time.Millisecond)

	s.fullscale = cfg.Fullscale
	return nil
}

// Reset triggers a sensor reset. The command has no response.
func (s *Spot) Reset() error {
	return s.SendCommand(OpReset)
}

// SendCommand sends a bare one byte command in its own select bracket.
func (s *Spot) SendCommand(cmd byte) error {
	if err := s.setCSLow(); err != nil {
		return err
	}
	if _, err := s.write([]byte{cmd}); err != nil {
		return errors.Join(err, s.setCSHigh())
	}
	return s.setCSHigh()
}

// IsDataAvailable reports whether the sensor has a new result ready to
// read. It is a single level read of the ready line; poll it.
func (s *Spot) IsDataAvailable() (bool, error) {
	return s.spi.DataReady()
}

// Close resets the sensor and closes the underlying interface.
func (s *Spot) Close() error {
	err := s.Reset()
	return errors.Join(err, s.spi.Close())
}

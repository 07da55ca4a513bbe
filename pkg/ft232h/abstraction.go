package ft232h

import (
	"fmt"
	"time"

	"github.com/yunginnanet/ft232h"
)

// spiMode1 is CPOL=0/CPHA=1, the mode the Spot sensor clocks data in.
const spiMode1 = 0x00000001

// Configure sets up the two control pins and the SPI bus for the Spot:
// chip select driven high (deselected), ready line as a pulled-up
// input, MSB-first mode 1 SPI at the given clock rate.
func (ft *FT232H) Configure(csPin, rdyPin uint, clock uint32) error {
	if err := ft.SetCSPin(csPin); err != nil {
		return err
	}
	if err := ft.SetRDYPin(rdyPin); err != nil {
		return err
	}

	cfg := ft.FT232H.SPI.GetConfig()
	cfg.Clock = clock
	cfg.CS = ft232h.C(csPin)
	cfg.Mode = spiMode1
	cfg.ActiveLow = false

	if err := ft.FT232H.SPI.Config(cfg); err != nil {
		return fmt.Errorf("failed to configure SPI: %w", err)
	}
	return nil
}

// SetCSPin configures the chip select pin as an output, deselected.
func (ft *FT232H) SetCSPin(pin uint) error {
	ft.csPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.csPin, ft232h.Output, true)
}

// CSPin returns the configured chip select pin.
func (ft *FT232H) CSPin() ft232h.CPin {
	return ft.csPin
}

// SetCS drives the chip select line. The Spot selects on low.
func (ft *FT232H) SetCS(high bool) error {
	return ft.FT232H.GPIO.Set(ft.csPin, high)
}

// SetRDYPin configures the ready line pin as a pulled-up input.
func (ft *FT232H) SetRDYPin(pin uint) error {
	ft.rdyPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.rdyPin, ft232h.Input, true)
}

// RDYPin returns the configured ready line pin.
func (ft *FT232H) RDYPin() ft232h.CPin {
	return ft.rdyPin
}

// DataReady reports whether the ready line is asserted. The sensor
// pulls the line low when a new result is available.
func (ft *FT232H) DataReady() (bool, error) {
	hl, err := ft.FT232H.GPIO.Get(ft.rdyPin)
	if err != nil {
		return false, fmt.Errorf("failed to read RDY pin: %w", err)
	}
	return !hl, nil
}

// WaitReady polls the ready line until it is asserted. There is no
// timeout; impose one a layer up if the sensor may be absent.
func (ft *FT232H) WaitReady() error {
	for {
		ready, err := ft.DataReady()
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
		time.Sleep(100 * time.Microsecond)
	}
}

func (ft *FT232H) Read(count uint, start bool, stop bool) ([]byte, error) {
	return ft.SPI.Read(count, start, stop)
}

func (ft *FT232H) Write(data []byte, start bool, stop bool) (uint, error) {
	return ft.SPI.Write(data, start, stop)
}

func (ft *FT232H) Init() error {
	return ft.SPI.Init()
}

func (ft *FT232H) Close() error {
	return ft.SPI.Close()
}

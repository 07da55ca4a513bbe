package ft232h

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/l0nax/go-spew/spew"
	"github.com/yunginnanet/ft232h"
)

var pprint = spew.ConfigState{
	Indent:       "\t",
	SortKeys:     true,
	HighlightHex: true,
}

func TestDescriptor(t *testing.T) {
	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByIndex(-1)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("BySerial", func(t *testing.T) {
		desc := BySerial("123456")
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = BySerial("")
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("ByMask", func(t *testing.T) {
		mask := new(ft232h.Mask)
		mask.Index = "0"
		desc := ByMask(mask)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByMask(nil)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("Mask", func(t *testing.T) {
		if ByIndex(5).Mask().Index != "5" {
			t.Error("unexpected mask index")
		}
		if BySerial("5").Mask().Serial != "5" {
			t.Error("unexpected mask serial")
		}
	})
}

func testConnect(t *testing.T, desc *Descriptor) DeviceInfo {
	t.Helper()

	var (
		ftdi *FT232H
		err  error
	)

	if desc == nil {
		ftdi, err = Connect()
	} else {
		if err = desc.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ftdi, err = Connect(*desc)
	}

	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}
	t.Logf("FT232H connected: %s", ftdi.String())

	info := ftdi.Info()
	pprint.Dump(info)

	if err = ftdi.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}

	return info
}

func TestConnect(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	t.Run("NoDesc", func(t *testing.T) {
		_ = testConnect(t, nil)
	})

	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if os.Getenv("TEST_FT232H_INDEX") != "" {
			idx, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEST_FT232H_INDEX")))
			if err != nil {
				t.Fatalf(
					"bad 'TEST_FT232H_INDEX' environment variable: %v\nvalue: %s",
					err, os.Getenv("TEST_FT232H_INDEX"),
				)
			}
			desc = ByIndex(idx)
		}
		_ = testConnect(t, &desc)
	})

	t.Run("BySerial", func(t *testing.T) {
		serial := strings.TrimSpace(os.Getenv("TEST_FT232H_SERIAL"))
		if serial == "" {
			t.Skip("set 'TEST_FT232H_SERIAL' in environment to run this test")
		}
		desc := BySerial(serial)
		_ = testConnect(t, &desc)
	})
}

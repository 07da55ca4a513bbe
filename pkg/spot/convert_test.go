package spot

import (
	"testing"
)

func TestConvert24To32(t *testing.T) {
	t.Run("PositiveValue", func(t *testing.T) {
		if result := Convert24To32(0x7FFFFF); result != int32(8388607) {
			t.Errorf("expected 8388607, got %d", result)
		}
	})

	t.Run("NegativeValue", func(t *testing.T) {
		if result := Convert24To32(0x800000); result != int32(-8388608) {
			t.Errorf("expected -8388608, got %d", result)
		}
	})

	t.Run("ZeroValue", func(t *testing.T) {
		if result := Convert24To32(0); result != int32(0) {
			t.Errorf("expected 0, got %d", result)
		}
	})

	t.Run("MinusFullscale", func(t *testing.T) {
		// 0xE00000 is -2097152 in 24 bit two's complement
		if result := Convert24To32(0xE00000); result != int32(-2097152) {
			t.Errorf("expected -2097152, got %d", result)
		}
	})

	t.Run("HighBitsIgnored", func(t *testing.T) {
		if Convert24To32(0xFF123456) != Convert24To32(0x123456) {
			t.Error("bits above 23 must not affect the result")
		}
	})
}

func TestConvertPressure(t *testing.T) {
	s := NewSpot(nil)

	t.Run("Fullscale", func(t *testing.T) {
		// 0x200000 = 2^21 counts = exactly fullscale
		if result := s.ConvertPressureAt(0x200000, 100.0); result != 100.0 {
			t.Errorf("expected 100.0, got %f", result)
		}
	})

	t.Run("MinusFullscale", func(t *testing.T) {
		if result := s.ConvertPressureAt(0xE00000, 100.0); result != -100.0 {
			t.Errorf("expected -100.0, got %f", result)
		}
	})

	t.Run("StoredMatchesExplicit", func(t *testing.T) {
		raws := []uint32{0, 1, 0x1FFFFF, 0x200000, 0x7FFFFF, 0x800000, 0xE00000}
		for _, fullscale := range []float64{0.25, 1, 110, 1000} {
			s.SetFullscale(fullscale)
			for _, raw := range raws {
				if s.ConvertPressure(raw) != s.ConvertPressureAt(raw, fullscale) {
					t.Errorf("stored fullscale %f diverges for raw 0x%06X", fullscale, raw)
				}
			}
		}
	})

	t.Run("Uncalibrated", func(t *testing.T) {
		s := NewSpot(nil)
		if result := s.ConvertPressure(0x200000); result != 0.0 {
			t.Errorf("uncalibrated conversion must be 0, got %f", result)
		}
	})
}

func TestConvertTemperature(t *testing.T) {
	s := NewSpot(nil)

	t.Run("FullSpan", func(t *testing.T) {
		if result := s.ConvertTemperature(0x200000); result != 25.0 {
			t.Errorf("expected 25.0, got %f", result)
		}
	})

	t.Run("NegativeSpan", func(t *testing.T) {
		if result := s.ConvertTemperature(0xE00000); result != -25.0 {
			t.Errorf("expected -25.0, got %f", result)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if result := s.ConvertTemperature(0); result != 0.0 {
			t.Errorf("expected 0.0, got %f", result)
		}
	})
}

package spot

// Result registers hold signed fixed point values: 1 sign bit and 23
// magnitude bits, with full scale at 2^21 counts so readings can
// overrange without saturating the register.
const fixedPointScale = 2097152.0 // 2^21

// temperatureSpan is the fixed ±25 °C full scale of the temperature
// register; temperature needs no calibration parameter.
const temperatureSpan = 25.0

// Convert24To32 reinterprets the low 24 bits of a register result as a
// two's complement signed value widened to 32 bits. Sign extension is
// explicit bit manipulation: bit 23 is replicated into bits 24..31.
func Convert24To32(raw uint32) int32 {
	u := raw & 0x00FFFFFF
	if u&0x800000 != 0 {
		u |= 0xFF000000
	}
	return int32(u)
}

// SetFullscale stores the fullscale pressure used by ConvertPressure,
// in whatever unit the caller wants pressure reported in. The fullscale
// is printed on the sensor and readable via ReadFullscale1/2.
func (s *Spot) SetFullscale(fullscale float64) {
	s.fullscale = fullscale
}

// Fullscale returns the stored fullscale pressure. Zero means no
// calibration has been set.
func (s *Spot) Fullscale() float64 {
	return s.fullscale
}

// ConvertPressure converts a pressure result register's content to
// pressure using the stored fullscale. With the fullscale unset (zero)
// the result is 0 regardless of the raw value; callers that need to
// tell "zero pressure" from "uncalibrated" must check Fullscale first.
func (s *Spot) ConvertPressure(result uint32) float64 {
	return s.ConvertPressureAt(result, s.fullscale)
}

// ConvertPressureAt converts a pressure result register's content using
// an explicit fullscale instead of the stored one.
func (s *Spot) ConvertPressureAt(result uint32, fullscale float64) float64 {
	return float64(Convert24To32(result)) / fixedPointScale * fullscale
}

// ConvertTemperature converts the temperature result register's content
// to degrees Celsius.
func (s *Spot) ConvertTemperature(result uint32) float64 {
	return float64(Convert24To32(result)) / fixedPointScale * temperatureSpan
}

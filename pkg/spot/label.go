package spot

import "bytes"

// ReadLabel reads a zero terminated label string from sensor memory.
// length is clamped to MaxLabelLen. If none of the bytes read back is a
// zero byte the field is unprogrammed or garbled, and the result is the
// empty string; a truncated, unterminated label is never surfaced.
func (s *Spot) ReadLabel(address uint16, length int) (string, error) {
	if length > MaxLabelLen {
		length = MaxLabelLen
	}

	buf, err := s.ReadMemory(address, length)
	if err != nil {
		return "", err
	}

	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", nil
	}
	return string(buf[:i]), nil
}

// ReadProductNo reads the product number label.
func (s *Spot) ReadProductNo() (string, error) {
	return s.ReadLabel(AddrProductNo, 32)
}

// ReadSerialNo reads the serial number label.
func (s *Spot) ReadSerialNo() (string, error) {
	return s.ReadLabel(AddrSerialNo, 32)
}

// ReadFullscale1 reads the first fullscale label.
func (s *Spot) ReadFullscale1() (string, error) {
	return s.ReadLabel(AddrFullscale1, 16)
}

// ReadFullscale2 reads the second fullscale label.
func (s *Spot) ReadFullscale2() (string, error) {
	return s.ReadLabel(AddrFullscale2, 16)
}

// ReadType reads the sensor type label.
func (s *Spot) ReadType() (string, error) {
	return s.ReadLabel(AddrType, 16)
}

// ReadSpeed reads the sensor speed label.
func (s *Spot) ReadSpeed() (string, error) {
	return s.ReadLabel(AddrSpeed, 16)
}

package spot

import (
	"errors"
	"fmt"
)

// ReadRegister reads a single 24 bit result register. The whole
// transaction is 4 bytes in one select bracket: the opcode, then three
// clocked-out bytes carrying the result most significant byte first.
func (s *Spot) ReadRegister(reg Register) (uint32, error) {
	if byte(reg) > RegIndexMask {
		return 0, fmt.Errorf("invalid result register 0x%02X", byte(reg))
	}

	if err := s.setCSLow(); err != nil {
		return 0, err
	}

	if _, err := s.write([]byte{ReadRegisterOpcode(reg)}); err != nil {
		return 0, errors.Join(err, s.setCSHigh())
	}

	buf := get3Bytes()
	if _, err := s.read(buf); err != nil {
		put3Bytes(buf)
		return 0, errors.Join(err, s.setCSHigh())
	}

	result := decodeRegister(buf)
	put3Bytes(buf)

	return result, s.setCSHigh()
}

// WriteRegister writes a single 24 bit result register. Bits above 23
// of value are discarded.
func (s *Spot) WriteRegister(reg Register, value uint32) error {
	if byte(reg) > RegIndexMask {
		return fmt.Errorf("invalid result register 0x%02X", byte(reg))
	}

	buf := get4Bytes()
	buf[0] = WriteRegisterOpcode(reg)
	buf[1] = byte(value >> 16)
	buf[2] = byte(value >> 8)
	buf[3] = byte(value)

	if err := s.setCSLow(); err != nil {
		put4Bytes(buf)
		return err
	}

	if _, err := s.write(buf); err != nil {
		put4Bytes(buf)
		return errors.Join(err, s.setCSHigh())
	}

	put4Bytes(buf)
	return s.setCSHigh()
}

// decodeRegister assembles the three result bytes of a register read,
// most significant byte first. Note the opposite byte order from the
// CRC cells in memory; the device uses two different data paths.
func decodeRegister(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

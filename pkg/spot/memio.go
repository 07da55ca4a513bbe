package spot

import (
	"errors"
	"fmt"
)

// Sensor memory and OTP access. The device addresses memory one byte
// per transaction: each byte is its own select bracket carrying a two
// byte header (opcode with the address high bits, then the address low
// byte) and one data byte. Multi-byte reads and writes are N sequential
// 3 byte transactions with the address incremented each time. This is a
// constraint of the device's internal addressing; it cannot be turned
// into a burst transfer.

// ReadMemory reads length bytes of sensor memory starting at address.
func (s *Spot) ReadMemory(address uint16, length int) ([]byte, error) {
	if err := checkSpan(address, length, MaxMemAddr); err != nil {
		return nil, err
	}

	data := make([]byte, length)
	for i := range data {
		b, err := s.readDataByte(MemoryReadHeader(address + uint16(i)))
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return data, nil
}

// WriteMemory writes the given bytes to sensor memory starting at address.
func (s *Spot) WriteMemory(address uint16, data []byte) error {
	if err := checkSpan(address, len(data), MaxMemAddr); err != nil {
		return err
	}

	for i, b := range data {
		if err := s.writeDataByte(MemoryWriteHeader(address+uint16(i)), b); err != nil {
			return err
		}
	}
	return nil
}

// ReadOTP reads length bytes of OTP memory starting at address.
// OTP is read-only from the bus; there is no write counterpart.
func (s *Spot) ReadOTP(address uint16, length int) ([]byte, error) {
	if err := checkSpan(address, length, MaxOtpAddr); err != nil {
		return nil, err
	}

	data := make([]byte, length)
	for i := range data {
		b, err := s.readDataByte(OtpReadHeader(address + uint16(i)))
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return data, nil
}

// readDataByte performs one 3 byte read transaction: two header bytes
// out, one data byte back.
func (s *Spot) readDataByte(header [2]byte) (byte, error) {
	if err := s.setCSLow(); err != nil {
		return 0, err
	}

	if _, err := s.write(header[:]); err != nil {
		return 0, errors.Join(err, s.setCSHigh())
	}

	buf := get1Byte()
	if _, err := s.read(buf); err != nil {
		put1Byte(buf)
		return 0, errors.Join(err, s.setCSHigh())
	}

	b := buf[0]
	put1Byte(buf)
	return b, s.setCSHigh()
}

// writeDataByte performs one 3 byte write transaction: two header bytes
// and the data byte, no response.
func (s *Spot) writeDataByte(header [2]byte, data byte) error {
	if err := s.setCSLow(); err != nil {
		return err
	}

	if _, err := s.write([]byte{header[0], header[1], data}); err != nil {
		return errors.Join(err, s.setCSHigh())
	}

	return s.setCSHigh()
}

// checkSpan rejects transfers that would run past the end of an address
// space. Wrapping would silently hit an unrelated cell.
func checkSpan(address uint16, length int, max uint16) error {
	if length < 0 {
		return fmt.Errorf("negative length %d", length)
	}
	if uint32(address)+uint32(length) > uint32(max)+1 {
		return fmt.Errorf("address range 0x%04X+%d exceeds 0x%04X", address, length, max)
	}
	return nil
}

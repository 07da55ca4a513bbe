package spot

// The sensor stores 4 byte checksums over its SRAM and OTP contents.
// The driver only reads and exposes them; it neither computes nor
// verifies them.

// ReadSramCrc reads the checksum over sensor memory.
func (s *Spot) ReadSramCrc() (uint32, error) {
	buf, err := s.ReadMemory(AddrSramCrc, 4)
	if err != nil {
		return 0, err
	}
	return decodeCrc(buf), nil
}

// ReadOtpCrc reads the checksum over OTP memory.
func (s *Spot) ReadOtpCrc() (uint32, error) {
	buf, err := s.ReadOTP(AddrOtpCrc, 4)
	if err != nil {
		return 0, err
	}
	return decodeCrc(buf), nil
}

// decodeCrc assembles 4 checksum bytes least significant byte first.
// This is the opposite byte order from decodeRegister and it is correct:
// the checksum cells and the result registers sit on two different data
// paths inside the device. Do not unify the two.
func decodeCrc(b []byte) uint32 {
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}

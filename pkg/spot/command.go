package spot

// Pure opcode/header builders for the four address spaces. The bit
// packing is a hardware contract; keep these as explicit masking, one
// function per access mode.

// ReadRegisterOpcode builds the opcode for reading result register reg.
func ReadRegisterOpcode(reg Register) byte {
	return OpReadRegister | (byte(reg) & RegIndexMask)
}

// WriteRegisterOpcode builds the opcode for writing result register reg.
func WriteRegisterOpcode(reg Register) byte {
	return OpWriteRegister | (byte(reg) & RegIndexMask)
}

// MemoryReadHeader builds the two header bytes addressing one byte of
// sensor memory for reading.
func MemoryReadHeader(addr uint16) [2]byte {
	return [2]byte{OpReadMemory | (byte(addr>>8) & MemAddrHighMask), byte(addr)}
}

// MemoryWriteHeader builds the two header bytes addressing one byte of
// sensor memory for writing.
func MemoryWriteHeader(addr uint16) [2]byte {
	return [2]byte{OpWriteMemory | (byte(addr>>8) & MemAddrHighMask), byte(addr)}
}

// OtpReadHeader builds the two header bytes addressing one byte of OTP
// memory for reading. OTP carries one more address bit than sensor memory.
func OtpReadHeader(addr uint16) [2]byte {
	return [2]byte{OpReadOTP | (byte(addr>>8) & OtpAddrHighMask), byte(addr)}
}

package spot

// Constants from the Spot datasheet.

// Opcode bases. The top two bits of the opcode select the access mode,
// the remaining bits carry the register index or address high bits.
const (
	// OpReadRegister reads a 24 bit result register: 0x40 | index.
	OpReadRegister = 0x40
	// OpWriteRegister writes a 24 bit result register: 0xC0 | index.
	OpWriteRegister = 0xC0
	// OpReadMemory reads one byte of sensor memory: 0x10 | addr[11:8], then addr[7:0].
	OpReadMemory = 0x10
	// OpWriteMemory writes one byte of sensor memory: 0x90 | addr[11:8], then addr[7:0].
	OpWriteMemory = 0x90
	// OpReadOTP reads one byte of OTP memory: 0x20 | addr[12:8], then addr[7:0].
	OpReadOTP = 0x20
	// OpReset is a bare one byte command, no response.
	OpReset = 0x88
)

// Address field widths per access mode.
const (
	// RegIndexMask is the result register index width (6 bits, 0..63).
	RegIndexMask = 0x3F
	// MemAddrHighMask selects the memory address bits carried in the opcode (12 bit space).
	MemAddrHighMask = 0x0F
	// OtpAddrHighMask selects the OTP address bits carried in the opcode (13 bit space).
	OtpAddrHighMask = 0x1F

	// MaxMemAddr is the last valid sensor memory address.
	MaxMemAddr = 0x0FFF
	// MaxOtpAddr is the last valid OTP address.
	MaxOtpAddr = 0x1FFF
)

// Result register indices.
const (
	RegPressure1   Register = 0x00
	RegPressure2   Register = 0x01
	RegPressure3   Register = 0x02
	RegTemperature Register = 0x03
	RegStatus      Register = 0x04

	// NumRegisters is the size of the result register file.
	NumRegisters = 0x40
)

// Label fields in sensor memory. Labels are fixed capacity,
// zero terminated ASCII.
const (
	AddrProductNo  uint16 = 0x0040
	AddrSerialNo   uint16 = 0x0060
	AddrFullscale1 uint16 = 0x0080
	AddrFullscale2 uint16 = 0x0090
	AddrType       uint16 = 0x00A0
	AddrSpeed      uint16 = 0x00B0

	// AddrSramCrc holds the 4 byte memory checksum, last cells of the SRAM space.
	AddrSramCrc uint16 = 0x0FFC
	// AddrOtpCrc holds the 4 byte OTP checksum, last cells of the OTP space.
	AddrOtpCrc uint16 = 0x1FFC
)

// MaxLabelLen is the capacity of a label field; longer read requests
// are clamped to this.
const MaxLabelLen = 32

// DefaultClock is the SPI clock the sensor is specified for, in Hz.
const DefaultClock = 4_000_000

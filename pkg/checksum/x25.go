// Package checksum implements the CRC-16/MCRF4XX running checksum used by
// MAVLink frames and crcExtra seeds.
package checksum

// Init is the starting value of every checksum.
const Init uint16 = 0xFFFF

// Accumulate folds one byte into a running checksum.
func Accumulate(crc uint16, b byte) uint16 {
	tmp := b ^ byte(crc&0xFF)
	tmp ^= tmp << 4
	return (crc >> 8) ^ (uint16(tmp) << 8) ^ (uint16(tmp) << 3) ^ (uint16(tmp) >> 4)
}

// Update folds p into a running checksum.
func Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = Accumulate(crc, b)
	}
	return crc
}

// UpdateString folds the bytes of s into a running checksum.
func UpdateString(crc uint16, s string) uint16 {
	for i := 0; i < len(s); i++ {
		crc = Accumulate(crc, s[i])
	}
	return crc
}

// Checksum returns the checksum of p starting from Init.
func Checksum(p []byte) uint16 {
	return Update(Init, p)
}

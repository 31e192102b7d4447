// Package bitfield holds the pure byte/bit decoding and encoding primitives
// shared by every topic in the catalogue: signed-biased bytes, bitfield
// slices, the frame checksum and the NTC thermistor lookup table.
package bitfield

import "math"

// Checksum computes the trailing checksum byte for data (which must not
// already include a checksum byte): ((sum(data) ^ 0xFF) + 1) mod 256.
func Checksum(data []byte) byte {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	return byte((sum ^ 0xFF) + 1)
}

// ValidChecksum reports whether the last byte of data is the correct
// checksum of the bytes preceding it. data must be non-empty.
func ValidChecksum(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return Checksum(data[:len(data)-1]) == data[len(data)-1]
}

// Bit1 returns the top bit of b (0 or 1).
func Bit1(b byte) int {
	return int(b >> 7)
}

// Bits1_2 returns the top 2 bits of b, minus 1 (the device's
// "0 = unknown/unsupported" convention).
func Bits1_2(b byte) int {
	return int(b>>6) - 1
}

// Bits3_4 returns bits 3-4 of b (counting from the MSB), minus 1.
func Bits3_4(b byte) int {
	return int((b>>4)&3) - 1
}

// Bits5_6 returns bits 5-6 of b, minus 1.
func Bits5_6(b byte) int {
	return int((b>>2)&3) - 1
}

// Bits7_8 returns the bottom 2 bits of b, minus 1.
func Bits7_8(b byte) int {
	return int(b&3) - 1
}

// Bits3_5 returns bits 3-5 of b (a 3-bit field), minus 1.
func Bits3_5(b byte) int {
	return int((b>>3)&7) - 1
}

// Right3 returns the bottom 3 bits of b, minus 1.
func Right3(b byte) int {
	return int(b&7) - 1
}

// IMinus1 returns int(b) - 1.
func IMinus1(b byte) int {
	return int(b) - 1
}

// IMinus128 returns int(b) - 128, the signed temperature scale.
func IMinus128(b byte) int {
	return int(b) - 128
}

// IMinus1Div5 returns (b-1)/5, rounded to one decimal.
func IMinus1Div5(b byte) float64 {
	v := (float64(b) - 1) / 5
	return math.Round(v*10) / 10
}

// IMinus1Times10 returns (b-1)*10.
func IMinus1Times10(b byte) int {
	return (int(b) - 1) * 10
}

// IMinus1Times50 returns (b-1)*50.
func IMinus1Times50(b byte) int {
	return (int(b) - 1) * 50
}

// Energy returns (b-1)*200 watts.
func Energy(b byte) int {
	return (int(b) - 1) * 200
}

// UpdateByte shifts val left by shift and splices it into the
// baseMask<<shift bits of current without disturbing neighbouring bits.
func UpdateByte(current byte, val int, baseMask int, shift uint) byte {
	mask := byte(baseMask) << shift
	return (current &^ mask) | (byte(val) << shift)
}

// NTCTable maps an 8-bit thermistor sensor code to degrees Celsius.
// Reproduced verbatim from the source catalogue (non-increasing, with a
// plateau of 120 at the top end and repeated values along the way).
var NTCTable = [256]int{
	120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 117, 114, 111, 108,
	106, 103, 101, 99, 97, 95, 93, 92, 90, 88, 87, 86, 84, 83, 82, 80,
	79, 78, 77, 76, 75, 74, 73, 72, 71, 70, 69, 68, 67, 66, 66, 65,
	64, 63, 62, 62, 61, 60, 60, 59, 58, 58, 57, 56, 56, 55, 54, 54,
	53, 53, 52, 51, 51, 50, 50, 49, 49, 48, 48, 47, 47, 46, 45, 45,
	44, 44, 44, 43, 43, 42, 42, 41, 41, 40, 40, 39, 39, 38, 38, 38,
	37, 37, 36, 36, 35, 35, 35, 34, 34, 33, 33, 32, 32, 32, 31, 31,
	30, 30, 30, 29, 29, 28, 28, 28, 27, 27, 27, 26, 26, 25, 25, 25,
	24, 24, 24, 23, 23, 22, 22, 22, 21, 21, 21, 20, 20, 19, 19, 19,
	18, 18, 18, 17, 17, 17, 16, 16, 15, 15, 15, 14, 14, 14, 13, 13,
	12, 12, 12, 11, 11, 11, 10, 10, 9, 9, 9, 8, 8, 8, 7, 7,
	6, 6, 6, 5, 5, 4, 4, 4, 3, 3, 2, 2, 2, 1, 1, 0,
	0, 0, -1, -1, -2, -2, -3, -3, -4, -4, -4, -5, -5, -6, -6, -7,
	-7, -8, -8, -9, -9, -10, -10, -11, -12, -12, -13, -13, -14, -15, -15, -16,
	-16, -17, -18, -18, -19, -20, -21, -21, -22, -23, -24, -25, -26, -27, -28, -29,
	-30, -31, -32, -33, -35, -36, -38, -40, -41, -44, -46, -49, -53, -57, -64, -78,
}

// NTCTemp looks up the degrees-Celsius reading for an 8-bit sensor code.
func NTCTemp(code byte) int {
	return NTCTable[code]
}

// NTCCodeOfTemp returns the lowest table index whose value is <= temp, or
// 255 if no entry qualifies.
func NTCCodeOfTemp(temp int) byte {
	for idx, v := range NTCTable {
		if temp >= v {
			return byte(idx)
		}
	}
	return 255
}

/*
NAME
  crc14.go

DESCRIPTION
  crc14.go implements the 14-bit cyclic redundancy check that guards the
  FT2H 77-bit payload.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

// Package crc14 computes the 14-bit CRC used to protect an FT2H payload.
//
// The check is a bit-serial, MSB-first shift register with no input or
// output reflection, initial value zero and no final XOR.
package crc14

import "github.com/pkg/errors"

// PayloadBits is the number of message bits the check is computed over.
const PayloadBits = 77

// Width is the register width in bits, per spec.md §4.1.
const Width = 14

// Poly is the generator polynomial used to feed the shift register:
// CRC_POLY = 0x6757 reduced to Width bits (0x6757 mod 2^14), since the
// spec's literal constant needs 15 bits but names a 14-bit register. See
// DESIGN.md, "CRC-14 register width".
const Poly uint16 = 0x2757

// Mask keeps the register to its Width bits.
const Mask uint16 = 0x3FFF

// padBits is the number of zero bits appended after the payload before
// the register is drained, per spec.md §4.1 (77 payload bits padded to
// 80 before the shift register runs).
const padBits = 3

// Compute returns the 14-bit CRC of a 77-bit payload. Each element of
// payload must be 0 or 1, MSB (payload[0]) first. Compute is a pure
// function: the same payload always yields the same CRC.
func Compute(payload []byte) (uint16, error) {
	if len(payload) != PayloadBits {
		return 0, errors.Errorf("crc14: payload must have %d bits, got %d", PayloadBits, len(payload))
	}

	var reg uint16
	for i, b := range payload {
		if b > 1 {
			return 0, errors.Errorf("crc14: bit %d is not 0 or 1: %d", i, b)
		}
		reg = step(reg, b)
	}
	for i := 0; i < padBits; i++ {
		reg = step(reg, 0)
	}
	return reg, nil
}

// step shifts one bit, MSB first, through the Width-bit register.
func step(reg uint16, bit byte) uint16 {
	top := (reg >> (Width - 1)) & 1
	reg = (reg << 1) & Mask
	if bit != 0 {
		reg |= 1
	}
	if top != 0 {
		reg ^= Poly
	}
	return reg
}

// Bits returns v's 14 bits, MSB first, as a freshly allocated []byte of
// 0/1 values.
func Bits(v uint16) []byte {
	out := make([]byte, 14)
	for i := range out {
		out[i] = byte((v >> (13 - i)) & 1)
	}
	return out
}

// Value packs 14 MSB-first bits (each 0 or 1) back into a uint16.
func Value(bits []byte) uint16 {
	var v uint16
	for _, b := range bits {
		v = (v << 1) | uint16(b&1)
	}
	return v
}

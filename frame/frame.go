/*
NAME
  frame.go

DESCRIPTION
  frame.go defines the FT2H standard-frame constants (scrambler, Costas
  sync arrays, Gray map) and assembles a 77-bit payload into the 76-slot
  tone sequence transmitted over the air.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

// Package frame lays a 77-bit payload out as the FT2H standard frame:
// scramble, CRC, LDPC-encode, Gray-map to tones, and slot the data
// symbols in between the two Costas sync groups and the ramp slots.
//
// The short (64,32) frame and sync (Costas) acquisition are out of
// scope; this package only produces/consumes the tone sequence assuming
// slot boundaries are already known, per spec.md §1 and §4.7.
package frame

import (
	"github.com/ft2hsim/ft2h/crc14"
	"github.com/ft2hsim/ft2h/ldpc"
	"github.com/pkg/errors"
)

// Frame geometry, fixed by spec.md §3 and §6.
const (
	NData  = 58 // data symbols (ND).
	NSync  = 16 // sync symbols across both Costas groups (NS).
	NSlots = 76 // total slots in the standard frame (NN2).

	rampSlot0 = 0
	rampSlot1 = NSlots - 1
)

// Data slot ranges: two runs of 29 symbols separated by the second
// Costas group.
var (
	costasASlots = [8]int{1, 2, 3, 4, 5, 6, 7, 8}
	dataSlotsA   = [29]int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37}
	costasBSlots = [8]int{38, 39, 40, 41, 42, 43, 44, 45}
	dataSlotsB   = [29]int{46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74}
)

// ICOS_A and ICOS_B are the two order-8 Costas sync sequences carried in
// the frame's two sync groups.
var (
	ICOS_A = [8]int{3, 1, 6, 7, 2, 5, 4, 0}
	ICOS_B = [8]int{5, 3, 6, 1, 2, 7, 4, 0}
)

// GRAYMAP maps a 3-bit binary value to its transmitted tone.
var GRAYMAP = [8]int{0, 1, 3, 2, 7, 6, 4, 5}

// IGRAY is the inverse Gray demap: IGRAY[k][t] is bit k (MSB first) of
// the unique binary value v with GRAYMAP[v] == t.
var IGRAY = [3][8]int{
	{0, 0, 0, 0, 1, 1, 1, 1},
	{0, 0, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 0, 0, 1, 1, 0},
}

// DataSlots returns the 58 frame-slot indices that carry data symbols,
// in transmission order: the argument a demodulator needs to know which
// slots to correlate, per spec.md §4.9.
func DataSlots() []int {
	slots := make([]int, 0, NData)
	slots = append(slots, dataSlotsA[:]...)
	slots = append(slots, dataSlotsB[:]...)
	return slots
}

// Tones is the 76-slot tone sequence of a standard frame.
type Tones [NSlots]int

// Assembled holds the result of laying out a payload: the transmitted
// tones and the 174-bit codeword they encode (kept for diagnostics).
type Assembled struct {
	Tones    Tones
	Codeword []byte
}

// Assemble implements spec.md §4.7: scramble payload, CRC the scrambled
// bits, LDPC-encode, Gray-map 3 bits per symbol, and lay the 76 frame
// slots out with the Costas groups and ramp slots.
func Assemble(payload []byte) (Assembled, error) {
	if len(payload) != crc14.PayloadBits {
		return Assembled{}, errors.Errorf("frame: payload must have %d bits, got %d", crc14.PayloadBits, len(payload))
	}

	scrambled := make([]byte, crc14.PayloadBits)
	for i, b := range payload {
		scrambled[i] = b ^ rvec[i]
	}

	sum, err := crc14.Compute(scrambled)
	if err != nil {
		return Assembled{}, errors.Wrap(err, "frame: computing CRC")
	}

	info := make([]byte, ldpc.NInfo)
	copy(info, scrambled)
	copy(info[crc14.PayloadBits:], crc14.Bits(sum))

	codeword, err := ldpc.EncodeInfo(info)
	if err != nil {
		return Assembled{}, errors.Wrap(err, "frame: encoding")
	}

	var tones Tones
	tones[rampSlot0] = 0
	tones[rampSlot1] = 0
	for i, s := range costasASlots {
		tones[s] = ICOS_A[i]
	}
	for i, s := range costasBSlots {
		tones[s] = ICOS_B[i]
	}

	dataSyms := make([]int, NData)
	for i := 0; i < NData; i++ {
		c0 := codeword[3*i]
		c1 := codeword[3*i+1]
		c2 := codeword[3*i+2]
		v := 4*int(c0) + 2*int(c1) + int(c2)
		dataSyms[i] = GRAYMAP[v]
	}
	for i, s := range dataSlotsA {
		tones[s] = dataSyms[i]
	}
	for i, s := range dataSlotsB {
		tones[s] = dataSyms[len(dataSlotsA)+i]
	}

	return Assembled{Tones: tones, Codeword: codeword}, nil
}

// Descramble XORs a decoded 77-bit payload with RVEC to recover the
// original message bits.
func Descramble(scrambled []byte) ([]byte, error) {
	if len(scrambled) != crc14.PayloadBits {
		return nil, errors.Errorf("frame: input must have %d bits, got %d", crc14.PayloadBits, len(scrambled))
	}
	out := make([]byte, crc14.PayloadBits)
	for i, b := range scrambled {
		out[i] = b ^ rvec[i]
	}
	return out, nil
}

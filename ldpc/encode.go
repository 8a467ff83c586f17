/*
NAME
  encode.go

DESCRIPTION
  encode.go implements the systematic LDPC(174,91) encoder.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

import (
	"github.com/ft2hsim/ft2h/crc14"
	"github.com/pkg/errors"
)

// EncodeInfo computes the systematic codeword for a 91-bit information
// block (the payload plus its 14-bit CRC, in whatever order the caller
// placed them). It returns the 174-bit codeword info ++ parity, where
// parity = GEN . info mod 2.
func EncodeInfo(info []byte) ([]byte, error) {
	if len(info) != NInfo {
		return nil, errors.Errorf("ldpc: info must have %d bits, got %d", NInfo, len(info))
	}
	codeword := make([]byte, NCode)
	copy(codeword, info)
	for r := 0; r < NParity; r++ {
		var s byte
		row := &GEN[r]
		for j := 0; j < NInfo; j++ {
			s ^= row[j] & info[j]
		}
		codeword[NInfo+r] = s
	}
	return codeword, nil
}

// EncodePayload is the direct LDPC-code entry point described in
// spec.md §4.2: it CRCs the plaintext 77-bit payload (not a scrambled
// version of it) and returns the 174-bit codeword. The on-air framing
// used by frame.Assemble instead CRCs the scrambled payload; see
// DESIGN.md, "Two CRC placements".
func EncodePayload(payload []byte) ([]byte, error) {
	if len(payload) != crc14.PayloadBits {
		return nil, errors.Errorf("ldpc: payload must have %d bits, got %d", crc14.PayloadBits, len(payload))
	}
	sum, err := crc14.Compute(payload)
	if err != nil {
		return nil, errors.Wrap(err, "ldpc: computing CRC")
	}
	info := make([]byte, NInfo)
	copy(info, payload)
	copy(info[crc14.PayloadBits:], crc14.Bits(sum))
	return EncodeInfo(info)
}

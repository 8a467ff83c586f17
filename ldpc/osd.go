/*
NAME
  osd.go

DESCRIPTION
  osd.go implements the order-0 ordered-statistics fallback decoder: a
  hard decision followed by single low-reliability-bit flips.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

import (
	"math"
	"sort"

	"github.com/ft2hsim/ft2h/crc14"
	"github.com/pkg/errors"
)

// DefaultMaxFlips is the default single-flip search depth.
const DefaultMaxFlips = 50

// OSDDecode is the ordered-statistics (OSD-0) fallback decoder: it takes
// the hard decision on llr, and if that isn't a CRC-accepted codeword,
// tries flipping one bit at a time, starting from the least reliable
// (smallest |llr|) bit, up to maxFlips attempts.
//
// It returns the decoded 91-bit info block, the number of flips applied
// (0 if the unmodified hard decision already decoded), and ok reporting
// success.
func OSDDecode(llr []float64, maxFlips int) (info []byte, nflips int, ok bool, err error) {
	if len(llr) != NCode {
		return nil, 0, false, errors.Errorf("ldpc: llr must have %d entries, got %d", NCode, len(llr))
	}

	hard := make([]byte, NCode)
	for b, v := range llr {
		if v < 0 {
			hard[b] = 1
		}
	}

	if ok, err := acceptCRC(hard); err != nil {
		return nil, 0, false, err
	} else if ok {
		return hardCopy(hard), 0, true, nil
	}

	order := make([]int, NCode)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return math.Abs(llr[order[i]]) < math.Abs(llr[order[j]])
	})

	limit := maxFlips
	if limit > NCode {
		limit = NCode
	}

	modified := make([]byte, NCode)
	for k := 1; k <= limit; k++ {
		copy(modified, hard)
		bit := order[k-1]
		modified[bit] ^= 1

		valid, err := Syndrome(modified)
		if err != nil {
			return nil, 0, false, err
		}
		if !valid {
			continue
		}
		if ok, err := acceptCRC(modified); err != nil {
			return nil, 0, false, err
		} else if ok {
			return hardCopy(modified), k, true, nil
		}
	}

	return nil, 0, false, nil
}

// acceptCRC reports whether the syndrome-valid codeword d's embedded
// CRC matches the CRC of its first 77 bits.
func acceptCRC(d []byte) (bool, error) {
	valid, err := Syndrome(d)
	if err != nil {
		return false, err
	}
	if !valid {
		return false, nil
	}
	sum, err := crc14.Compute(d[:crc14.PayloadBits])
	if err != nil {
		return false, err
	}
	return crc14.Value(d[crc14.PayloadBits:NInfo]) == sum, nil
}

/*
NAME
  bp.go

DESCRIPTION
  bp.go implements the normalized min-sum belief-propagation decoder for
  the LDPC(174,91) code, gated by the embedded CRC-14.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

import (
	"math"

	"github.com/ft2hsim/ft2h/crc14"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultMaxIter and DefaultAlpha are the min-sum decoder's default
// tuning: an iteration cap and the normalized-min-sum scaling factor.
const (
	DefaultMaxIter = 40
	DefaultAlpha   = 0.8
)

// BPDecode runs the normalized min-sum belief-propagation decoder on
// llr (174 log-likelihood ratios, sign convention positive => bit 0).
//
// The message schedule is flooded (parallel): every check is updated
// from last iteration's bit-to-check messages, then every bit is
// updated from this iteration's check-to-bit messages, all before any
// message is reused. This ordering keeps the number of iterations to
// convergence reproducible; a serial
// (layered) schedule converges at a different rate. See spec.md §4.4,
// §9 "Flooded vs serial BP schedule".
//
// BPDecode returns the decoded 91-bit info block, along with nhard (the
// number of bits the raw LLR hard decision disagreed with the decoded
// block), and ok reporting whether a CRC-accepted codeword was found
// within maxIter iterations.
func BPDecode(llr []float64, maxIter int, alpha float64) (info []byte, nhard int, ok bool, err error) {
	if len(llr) != NCode {
		return nil, 0, false, errors.Errorf("ldpc: llr must have %d entries, got %d", NCode, len(llr))
	}

	R := make([]float64, len(edges))
	Q := make([]float64, len(edges))
	for b := 0; b < NCode; b++ {
		for _, e := range bitEdges[b] {
			Q[e] = llr[b]
		}
	}

	d := make([]byte, NCode)
	total := make([]float64, NCode)
	rvals := make([]float64, 0, 8)

	for iter := 0; iter < maxIter; iter++ {
		// Check update: for every check, every incident edge gets the
		// scaled sign-product / magnitude-min of the other edges at
		// that check.
		for c := 0; c < NParity; c++ {
			es := checkEdges[c]
			for _, et := range es {
				sign := 1.0
				min0 := math.MaxFloat64
				for _, eo := range es {
					if eo == et {
						continue
					}
					v := Q[eo]
					if v < 0 {
						sign = -sign
					}
					if av := math.Abs(v); av < min0 {
						min0 = av
					}
				}
				R[et] = alpha * sign * min0
			}
		}

		// Bit update and tentative hard decision.
		for b := 0; b < NCode; b++ {
			rvals = rvals[:0]
			for _, e := range bitEdges[b] {
				rvals = append(rvals, R[e])
			}
			total[b] = llr[b] + floats.Sum(rvals)
			if total[b] < 0 {
				d[b] = 1
			} else {
				d[b] = 0
			}
			for _, e := range bitEdges[b] {
				Q[e] = total[b] - R[e]
			}
		}

		valid, err := Syndrome(d)
		if err != nil {
			return nil, 0, false, err
		}
		if !valid {
			continue
		}

		sum, err := crc14.Compute(d[:crc14.PayloadBits])
		if err != nil {
			return nil, 0, false, err
		}
		if crc14.Value(d[crc14.PayloadBits:NInfo]) != sum {
			// Syndrome-valid, CRC-invalid: a codeword of the outer
			// LDPC code that isn't the transmitted CRC-bearing one.
			// Not a decode; keep iterating. See spec.md §7.2.
			continue
		}

		return hardCopy(d), countHardMismatch(llr, d), true, nil
	}

	return nil, 0, false, nil
}

// hardCopy returns the first NInfo bits of d.
func hardCopy(d []byte) []byte {
	out := make([]byte, NInfo)
	copy(out, d[:NInfo])
	return out
}

// countHardMismatch counts, over the full codeword, how many bits
// differ between the raw-LLR hard decision and the decoded bits, per
// spec.md §4.4's definition of nhard.
func countHardMismatch(llr []float64, d []byte) int {
	n := 0
	for b := 0; b < NCode; b++ {
		hard := byte(0)
		if llr[b] < 0 {
			hard = 1
		}
		if hard != d[b] {
			n++
		}
	}
	return n
}

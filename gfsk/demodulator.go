/*
NAME
  demodulator.go

DESCRIPTION
  demodulator.go implements the coherent 8-ary tone-energy demodulator:
  a per-symbol correlator bank, max-log soft bit likelihoods through the
  Gray demap, and a final mean-magnitude LLR rescale.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package gfsk

import (
	"math"
	"math/cmplx"

	"github.com/ft2hsim/ft2h/frame"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// llrScale is the empirical calibration so rescaled LLRs enter the BP
// decoder's working range. spec.md §4.9 notes an implementation may use
// any equivalent scaling as long as the BP normalization alpha is
// retuned to match; this module pairs it with ldpc.DefaultAlpha.
const llrScale = 2.83

// Demodulate extracts one correlator-bank soft-bit triple per slot in
// dataSlots (in the order the bits were Gray-mapped at the transmitter,
// i.e. frame.DataSlots()), and returns the concatenated LLR vector,
// sign convention positive => bit 0, rescaled so mean(|llr|) == llrScale.
func Demodulate(rx []float64, dataSlots []int, f0 float64) ([]float64, error) {
	for i, s := range rx {
		if math.IsNaN(s) {
			return nil, errors.Errorf("gfsk: sample %d is NaN", i)
		}
	}

	llr := make([]float64, 0, 3*len(dataSlots))
	var s2 [M]float64

	for _, slot := range dataSlots {
		start := (slot + 1) * NSPS
		end := start + NSPS
		if start < 0 || end > len(rx) {
			return nil, errors.Errorf("gfsk: slot %d needs samples [%d,%d), have %d", slot, start, end, len(rx))
		}
		seg := rx[start:end]

		for t := 0; t < M; t++ {
			s2[t] = tonePower(seg, f0+float64(t)*Baud)
		}

		for k := 0; k < 3; k++ {
			max0 := math.Inf(-1)
			max1 := math.Inf(-1)
			for t := 0; t < M; t++ {
				if frame.IGRAY[k][t] == 0 {
					if s2[t] > max0 {
						max0 = s2[t]
					}
				} else if s2[t] > max1 {
					max1 = s2[t]
				}
			}
			llr = append(llr, max0-max1)
		}
	}

	rescale(llr)
	return llr, nil
}

// tonePower correlates seg against a unit-amplitude complex exponential
// at freq Hz and returns the squared magnitude of the result.
func tonePower(seg []float64, freq float64) float64 {
	dt := 1.0 / FSample
	var acc complex128
	w := -2 * math.Pi * freq * dt
	for n, s := range seg {
		acc += complex(s, 0) * cmplx.Exp(complex(0, w*float64(n)))
	}
	return math.Pow(cmplx.Abs(acc), 2)
}

// rescale normalizes llr in place so its mean absolute value is
// llrScale, matching the BP decoder's expected LLR range.
func rescale(llr []float64) {
	if len(llr) == 0 {
		return
	}
	abs := make([]float64, len(llr))
	for i, v := range llr {
		abs[i] = math.Abs(v)
	}
	mu := floats.Sum(abs) / float64(len(abs))
	if mu <= 0 {
		return
	}
	scale := llrScale / mu
	for i := range llr {
		llr[i] *= scale
	}
}

/*
NAME
  gfsk.go

DESCRIPTION
  gfsk.go defines the 8-GFSK waveform parameters shared by the
  modulator and demodulator, and the Gaussian frequency pulse they are
  both built from.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

// Package gfsk implements the FT2H 8-ary continuous-phase Gaussian
// frequency-shift-keyed waveform: modulation (tones to samples) and
// coherent demodulation (samples to soft bit likelihoods).
package gfsk

import "math"

// Waveform parameters, fixed by spec.md §4.8/§6.
const (
	NSPS    = 576          // samples per symbol.
	FSample = 12000         // sample rate, Hz.
	M       = 8             // tone alphabet size.
	H       = 1.0           // modulation index.
	BT      = 1.0           // Gaussian filter bandwidth-time product.
	Baud    = float64(FSample) / NSPS
)

// pulseLen is the Gaussian frequency pulse support, 3 symbol periods.
const pulseLen = 3 * NSPS

// dphiPeak is the peak phase increment per sample contributed by one
// unit of tone value.
var dphiPeak = 2 * math.Pi * H / NSPS

// gaussianPulse is the precomputed Gaussian frequency pulse p(t),
// sampled in time at pulseLen points, built once at init and shared
// (read-only) by every modulation call.
var gaussianPulse [pulseLen]float64

func init() {
	// c = pi * sqrt(2/ln2), the standard BT-to-erfc scaling constant for
	// a Gaussian minimum-shift pulse.
	c := math.Pi * math.Sqrt(2/math.Ln2)
	for i := 0; i < pulseLen; i++ {
		t := (float64(i) - 1.5*NSPS) / NSPS
		gaussianPulse[i] = 0.5 * (math.Erfc(c*BT*(t-0.5)) - math.Erfc(c*BT*(t+0.5)))
	}
}

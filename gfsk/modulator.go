/*
NAME
  modulator.go

DESCRIPTION
  modulator.go implements the 8-GFSK modulator: Gaussian pulse shaping,
  phase accumulation and the raised-cosine edge ramps.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package gfsk

import (
	"math"

	"github.com/pkg/errors"
)

// Modulate generates the audio samples for a tone sequence, per
// spec.md §4.8. The returned waveform has (len(tones)+2)*NSPS samples:
// one leading and one trailing symbol period of continuous-wave ramp
// beyond the transmitted tones, to accommodate the 3-symbol-wide pulse
// support and the edge amplitude ramps.
func Modulate(tones []int, f0 float64) ([]float64, error) {
	for i, t := range tones {
		if t < 0 || t >= M {
			return nil, errors.Errorf("gfsk: tone %d at symbol %d out of range [0,%d)", t, i, M)
		}
	}

	nsym := len(tones)
	length := (nsym + 2) * NSPS
	dphi := make([]float64, length)

	for j, tone := range tones {
		if tone == 0 {
			continue
		}
		amp := dphiPeak * float64(tone)
		base := j * NSPS
		for i := 0; i < pulseLen; i++ {
			idx := base + i
			if idx >= length {
				break
			}
			dphi[idx] += amp * gaussianPulse[i]
		}
	}

	carrier := 2 * math.Pi * f0 / FSample
	for i := range dphi {
		dphi[i] += carrier
	}

	wave := make([]float64, length)
	var phi float64
	for i, d := range dphi {
		phi += d
		wave[i] = math.Sin(phi)
	}

	applyRamps(wave, nsym)
	return wave, nil
}

// applyRamps shapes the leading and trailing symbol period with
// complementary raised-cosine amplitude ramps (spec.md §4.8 step 5).
func applyRamps(wave []float64, nsym int) {
	for i := 0; i < NSPS; i++ {
		wave[i] *= rampUp(i)
	}
	tailOff := (nsym + 1) * NSPS
	for i := 0; i < NSPS; i++ {
		wave[tailOff+i] *= rampDown(i)
	}
}

func rampUp(i int) float64 {
	return (1 - math.Cos(math.Pi*float64(i)/NSPS)) / 2
}

func rampDown(i int) float64 {
	return 1 - rampUp(i)
}

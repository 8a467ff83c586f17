/*
NAME
  summary.go

DESCRIPTION
  summary.go aggregates trial outcomes into word/bit error rates with a
  Wilson confidence interval on WER, and renders a textual summary table
  as the Python reference implementation's simulators print before
  plotting.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package trial

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/ft2hsim/ft2h/crc14"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Point is the aggregated result for one SNR.
type Point struct {
	SNRdB       float64
	NTrials     int
	WER         float64
	BER         float64
	WERLo, WERHi float64 // 95% Wilson interval on WER.
}

// Aggregate folds a slice of per-trial Outcomes (all from the same SNR
// point) into a Point.
func Aggregate(snrDB float64, outcomes []Outcome) Point {
	n := len(outcomes)
	if n == 0 {
		return Point{SNRdB: snrDB}
	}

	wordErr := make([]float64, n)
	bitRate := make([]float64, n)
	words := 0
	for i, o := range outcomes {
		if o.WordError {
			wordErr[i] = 1
			words++
		}
		bitRate[i] = float64(o.BitErrors) / float64(crc14.PayloadBits)
	}

	wer := stat.Mean(wordErr, nil)
	ber := stat.Mean(bitRate, nil)
	lo, hi := wilsonInterval(words, n)

	return Point{SNRdB: snrDB, NTrials: n, WER: wer, BER: ber, WERLo: lo, WERHi: hi}
}

// wilsonInterval returns the 95% Wilson score interval for a binomial
// proportion successes/n, used to bound the WER estimate reported for
// each SNR point.
func wilsonInterval(successes, n int) (lo, hi float64) {
	if n == 0 {
		return 0, 0
	}
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	p := float64(successes) / float64(n)
	denom := 1 + z*z/float64(n)
	center := p + z*z/(2*float64(n))
	margin := z * math.Sqrt((p*(1-p)+z*z/(4*float64(n)))/float64(n))
	lo = (center - margin) / denom
	hi = (center + margin) / denom
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	return lo, hi
}

// Summary is a full SNR sweep: one Point per SNR, in sweep order.
type Summary struct {
	Points []Point
}

// String renders the sweep as a column-aligned table, matching the
// console-table style cmd/rv/main.go uses for its status prints.
func (s Summary) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SNR(dB)\tTrials\tWER\tBER\tWER 95% CI")
	for _, p := range s.Points {
		fmt.Fprintf(w, "%.1f\t%d\t%.4f\t%.4g\t[%.4f, %.4f]\n",
			p.SNRdB, p.NTrials, p.WER, p.BER, p.WERLo, p.WERHi)
	}
	w.Flush()
	return b.String()
}

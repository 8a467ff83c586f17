/*
NAME
  trial_test.go

DESCRIPTION
  trial_test.go tests outcome aggregation and runs a small end-to-end
  Monte-Carlo trial at high SNR.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package trial

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/ausocean/utils/logging"
)

func TestAggregateAllSuccess(t *testing.T) {
	outcomes := []Outcome{
		{WordError: false, BitErrors: 0, Decoded: true},
		{WordError: false, BitErrors: 0, Decoded: true},
		{WordError: false, BitErrors: 0, Decoded: true},
	}
	p := Aggregate(10, outcomes)
	if p.SNRdB != 10 {
		t.Errorf("SNRdB = %v, want 10", p.SNRdB)
	}
	if p.NTrials != 3 {
		t.Errorf("NTrials = %d, want 3", p.NTrials)
	}
	if p.WER != 0 {
		t.Errorf("WER = %v, want 0", p.WER)
	}
	if p.BER != 0 {
		t.Errorf("BER = %v, want 0", p.BER)
	}
	if p.WERLo < 0 || p.WERHi > 1 || p.WERLo > p.WERHi {
		t.Errorf("bad Wilson interval [%v, %v]", p.WERLo, p.WERHi)
	}
}

func TestAggregateMixed(t *testing.T) {
	outcomes := []Outcome{
		{WordError: false, BitErrors: 0},
		{WordError: true, BitErrors: 5},
		{WordError: true, BitErrors: 77},
		{WordError: false, BitErrors: 0},
	}
	p := Aggregate(-5, outcomes)
	if p.WER != 0.5 {
		t.Errorf("WER = %v, want 0.5", p.WER)
	}
	wantBER := (5.0/77 + 77.0/77) / 4
	if diff := p.BER - wantBER; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("BER = %v, want %v", p.BER, wantBER)
	}
	if p.WERLo <= 0 || p.WERLo >= p.WER {
		t.Errorf("WERLo = %v, want in (0, %v)", p.WERLo, p.WER)
	}
	if p.WERHi <= p.WER || p.WERHi >= 1 {
		t.Errorf("WERHi = %v, want in (%v, 1)", p.WERHi, p.WER)
	}
}

func TestAggregateEmpty(t *testing.T) {
	p := Aggregate(0, nil)
	if p.NTrials != 0 || p.WER != 0 || p.BER != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero Point", p)
	}
}

func TestSummaryString(t *testing.T) {
	s := Summary{Points: []Point{
		{SNRdB: 10, NTrials: 5, WER: 0, BER: 0, WERLo: 0, WERHi: 0.1},
	}}
	out := s.String()
	if out == "" {
		t.Fatal("String returned empty output")
	}
}

// TestRunHighSNR exercises the full pipeline (assemble, modulate, add
// noise, demodulate, decode, descramble) end to end at a benign SNR and
// expects every trial to decode successfully, per spec.md §8's high-SNR
// scenario.
func TestRunHighSNR(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	log := logging.New(logging.Debug, &bytes.Buffer{}, true)
	p := Params{SNRdB: 20, NTrials: 5, F0: 1500}

	outcomes, err := Run(rng, p, log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(outcomes) != p.NTrials {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), p.NTrials)
	}
	for i, o := range outcomes {
		if !o.Decoded {
			t.Errorf("trial %d: failed to decode at high SNR", i)
			continue
		}
		if o.WordError {
			t.Errorf("trial %d: word error at high SNR (bit errors %d)", i, o.BitErrors)
		}
	}
}

func TestSigFacMonotonic(t *testing.T) {
	if sigFac(20) <= sigFac(0) {
		t.Error("sigFac should increase with SNR")
	}
}

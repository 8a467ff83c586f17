/*
NAME
  ldpc_test.go

DESCRIPTION
  ldpc_test.go tests the LDPC(174,91) generator/parity consistency and
  the BP and OSD decoders.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

import (
	"math/rand"
	"testing"

	"github.com/ft2hsim/ft2h/crc14"
)

func randomInfo(rng *rand.Rand) []byte {
	info := make([]byte, NInfo)
	for i := range info {
		info[i] = byte(rng.Intn(2))
	}
	return info
}

// randomCRCInfo builds a 91-bit info block whose last 14 bits are the
// CRC-14 of its first 77, the layout BPDecode/OSDDecode require to
// accept a codeword (bp.go, osd.go's acceptCRC).
func randomCRCInfo(rng *rand.Rand) []byte {
	info := make([]byte, NInfo)
	for i := 0; i < crc14.PayloadBits; i++ {
		info[i] = byte(rng.Intn(2))
	}
	sum, err := crc14.Compute(info[:crc14.PayloadBits])
	if err != nil {
		panic(err)
	}
	copy(info[crc14.PayloadBits:], crc14.Bits(sum))
	return info
}

// TestEncodeConsistency checks spec.md §8's LDPC consistency law: for
// every info block, H . (info || GEN.info) == 0 over GF(2).
func TestEncodeConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		info := randomInfo(rng)
		codeword, err := EncodeInfo(info)
		if err != nil {
			t.Fatalf("EncodeInfo: %v", err)
		}
		ok, err := Syndrome(codeword)
		if err != nil {
			t.Fatalf("Syndrome: %v", err)
		}
		if !ok {
			t.Fatalf("codeword for info %v fails its syndrome check", info)
		}
	}
}

func TestEncodeWrongLength(t *testing.T) {
	if _, err := EncodeInfo(make([]byte, NInfo-1)); err == nil {
		t.Fatal("expected an error for a short info block")
	}
}

// TestColumnWeight checks mnTable itself (not just the fixed-size array
// bitEdges is declared with): every bit names checksPerBit distinct,
// in-range check indices, so H really does have column weight 3.
func TestColumnWeight(t *testing.T) {
	for b, checks := range mnTable {
		if len(checks) != checksPerBit {
			t.Fatalf("mnTable[%d] has %d entries, want %d", b, len(checks), checksPerBit)
		}
		seen := make(map[int]bool, checksPerBit)
		for _, c1 := range checks {
			c := c1 - 1
			if c < 0 || c >= NParity {
				t.Fatalf("mnTable[%d] names check %d, out of range [1,%d]", b, c1, NParity)
			}
			if seen[c] {
				t.Fatalf("mnTable[%d] names check %d twice", b, c1)
			}
			seen[c] = true
		}
	}

	// Cross-check against the built Tanner graph: every check's bit list
	// sums back to the same column weight per bit.
	counts := make([]int, NCode)
	for c := 0; c < NParity; c++ {
		for _, b := range checkToBits[c] {
			counts[b]++
		}
	}
	for b, n := range counts {
		if n != checksPerBit {
			t.Fatalf("bit %d participates in %d checks via checkToBits, want %d", b, n, checksPerBit)
		}
	}
}

// strongLLR converts a hard bit sequence into confident LLRs (positive
// => bit 0), for noise-free decode tests.
func strongLLR(bits []byte) []float64 {
	llr := make([]float64, len(bits))
	for i, b := range bits {
		if b == 0 {
			llr[i] = 10
		} else {
			llr[i] = -10
		}
	}
	return llr
}

func TestBPDecodeNoiseFree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		info := randomCRCInfo(rng)
		codeword, err := EncodeInfo(info)
		if err != nil {
			t.Fatalf("EncodeInfo: %v", err)
		}
		llr := strongLLR(codeword)

		decoded, nhard, ok, err := BPDecode(llr, DefaultMaxIter, DefaultAlpha)
		if err != nil {
			t.Fatalf("BPDecode: %v", err)
		}
		if !ok {
			t.Fatalf("BPDecode failed to converge on a noise-free codeword")
		}
		if nhard != 0 {
			t.Errorf("nhard = %d, want 0 for a noise-free codeword", nhard)
		}
		for b := range info {
			if decoded[b] != info[b] {
				t.Fatalf("decoded info differs at bit %d: got %d want %d", b, decoded[b], info[b])
			}
		}
	}
}

func TestOSDDecodeAcceptsValidHardDecision(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	info := randomCRCInfo(rng)
	codeword, err := EncodeInfo(info)
	if err != nil {
		t.Fatal(err)
	}
	llr := strongLLR(codeword)

	decoded, nflips, ok, err := OSDDecode(llr, DefaultMaxFlips)
	if err != nil {
		t.Fatalf("OSDDecode: %v", err)
	}
	if !ok {
		t.Fatal("OSDDecode failed on a noise-free codeword")
	}
	if nflips != 0 {
		t.Errorf("nflips = %d, want 0 for an already-valid hard decision", nflips)
	}
	for b := range info {
		if decoded[b] != info[b] {
			t.Fatalf("decoded info differs at bit %d", b)
		}
	}
}

func TestOSDDecodeSingleFlipRecovers(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	info := randomCRCInfo(rng)
	codeword, err := EncodeInfo(info)
	if err != nil {
		t.Fatal(err)
	}
	llr := strongLLR(codeword)
	// Weaken one codeword bit's LLR just enough to flip its hard
	// decision, leaving it the least reliable bit.
	llr[5] = -llr[5] * 0.01

	_, nflips, ok, err := OSDDecode(llr, DefaultMaxFlips)
	if err != nil {
		t.Fatalf("OSDDecode: %v", err)
	}
	if !ok {
		t.Fatal("OSDDecode failed to recover from a single corrupted bit")
	}
	if nflips != 1 {
		t.Errorf("nflips = %d, want 1", nflips)
	}
}

func TestCombinedDecodeFailsOnNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	llr := make([]float64, NCode)
	for i := range llr {
		llr[i] = rng.NormFloat64()
	}
	res, err := Decode(llr)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.OK {
		t.Fatalf("Decode unexpectedly succeeded on pure noise: %+v", res)
	}
	if res.Method != MethodNone {
		t.Errorf("Method = %v, want MethodNone", res.Method)
	}
}

func TestDecodeWrongLength(t *testing.T) {
	if _, _, _, err := BPDecode(make([]float64, NCode-1), DefaultMaxIter, DefaultAlpha); err == nil {
		t.Fatal("expected an error for a short LLR vector")
	}
	if _, _, _, err := OSDDecode(make([]float64, NCode-1), DefaultMaxFlips); err == nil {
		t.Fatal("expected an error for a short LLR vector")
	}
}

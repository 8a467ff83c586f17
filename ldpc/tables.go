/*
NAME
  tables.go

DESCRIPTION
  tables.go holds the fixed LDPC(174,91) tables (the generator matrix and
  the bit/check adjacency list) and builds the derived parity-check
  matrix and edge indices used by the decoders.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

import "github.com/pkg/errors"

// Code dimensions.
const (
	NInfo   = 91  // systematic information bits (77 payload + 14 CRC).
	NParity = 83  // parity bits / check nodes.
	NCode   = 174 // codeword length.
	// checksPerBit is the LDPC column weight: every codeword bit
	// participates in exactly this many parity checks.
	checksPerBit = 3
)

// genHex and mnTable, the auto-generated tables, are in gen_tables.go.

// GEN is the NParity x NInfo generator matrix: parity = GEN . info mod 2.
var GEN [NParity][NInfo]byte

// edge is one entry of the Tanner graph: a (check, bit) pair that H
// connects, addressed by a single ordinal used to index the flat
// message arrays the BP decoder works with.
type edge struct {
	check int
	bit   int
}

var (
	edges        []edge   // all edges, bit-major, in each bit's mnTable check order.
	bitEdges     [NCode][checksPerBit]int // edge ordinals incident to each bit.
	checkEdges   [NParity][]int           // edge ordinals incident to each check.
	checkToBits  [NParity][]int           // bit indices incident to each check.
)

func init() {
	if err := parseGen(); err != nil {
		panic(err)
	}
	buildGraph()
}

// parseGen decodes genHex (83 rows of 23 hex chars = 92 bits each,
// keeping only the first NInfo=91 bits of each row) into GEN.
func parseGen() error {
	for r, s := range genHex {
		if len(s) != 23 {
			return errors.Errorf("ldpc: GEN row %d has %d hex chars, want 23", r, len(s))
		}
		bitIdx := 0
		for _, c := range s {
			nibble, err := hexNibble(byte(c))
			if err != nil {
				return errors.Wrapf(err, "ldpc: GEN row %d", r)
			}
			for b := 3; b >= 0; b-- {
				if bitIdx >= NInfo {
					break
				}
				GEN[r][bitIdx] = (nibble >> uint(b)) & 1
				bitIdx++
			}
		}
	}
	return nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.Errorf("not a hex digit: %q", c)
	}
}

// buildGraph derives H's edge list and the per-check bit adjacency from
// mnTable, the 174x3 bit-to-check list of 1-based check indices.
func buildGraph() {
	edges = make([]edge, 0, NCode*checksPerBit)
	for b, checks := range mnTable {
		for k, c1 := range checks {
			c := c1 - 1
			e := len(edges)
			edges = append(edges, edge{check: c, bit: b})
			bitEdges[b][k] = e
			checkEdges[c] = append(checkEdges[c], e)
			checkToBits[c] = append(checkToBits[c], b)
		}
	}
}

// Syndrome reports whether the 174-bit codeword satisfies every parity
// check, i.e. H . codeword = 0 over GF(2).
func Syndrome(codeword []byte) (bool, error) {
	if len(codeword) != NCode {
		return false, errors.Errorf("ldpc: codeword must have %d bits, got %d", NCode, len(codeword))
	}
	for c := 0; c < NParity; c++ {
		var s byte
		for _, b := range checkToBits[c] {
			s ^= codeword[b]
		}
		if s != 0 {
			return false, nil
		}
	}
	return true, nil
}

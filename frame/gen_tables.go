/*
NAME
  gen_tables.go

DESCRIPTION
  gen_tables.go holds the raw RVEC scrambler constant. Treated as a
  fixed, process-wide constant; never mutated.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package frame

// rvec is the 77-bit payload scrambler mask (XORed in and back out).
var rvec = [77]byte{
	0, 1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0,
	1, 1, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 1,
}

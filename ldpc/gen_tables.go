/*
NAME
  gen_tables.go

DESCRIPTION
  gen_tables.go holds the raw constant tables for the LDPC(174,91) code:
  the generator matrix packed as per-row hex strings, and the bit-to-check
  adjacency list. These are treated as fixed, process-wide constants and
  are never mutated after tables.go's init parses them.

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/

package ldpc

// genHex holds the 83 rows of the systematic LDPC(174,91) generator
// matrix, each row packed as a 23-character hex string (92 bits; the
// trailing bit is unused, see parseGen).
var genHex = [NParity]string{
	"2a179a03f3831c8650403e8", "51374789a5aef328dc48544", "e52347a9adaef32ed6486a8", "86ca413f240635be2d81482",
	"f6aa6bc8dd8c2f16d590ada", "00000400000001000000000", "8a0e8847d3171d845146bfa", "bca378c60048a21c9324668",
	"d392502d10344213539012c", "d6b1c15f197e255e1cc359c", "00000000100000000000000", "a001024420a400020106810",
	"43cbf55dba4bb972803b2f6", "00040001000040000000400", "c30e8846d357958411c49fa", "40004800000000000004020",
	"e9b147e8607094c1650698c", "ef943f5fa7e655305f3d33c", "2b9fcef4c4d7ea91a1534ee", "a05c024d54780b70bffb960",
	"b820f62450e7e50b7678e04", "c02d68fdc6044d8984bbbc6", "94bed3eb3bc37f64f1fa330", "129a30787a4fbadfe0ad20e",
	"dfb1b35b83ad9248339aeee", "00098000000000100010100", "8c141d4fa5e611b05fbf13c", "f62acbc0dd8d2f27959025a",
	"80000200000000000084000", "c5ecbc68457cf0053dd4d84", "4971777487aba6e61e0bb6c", "86c941bf244635be2d81482",
	"9894b89fa958af6bb1e19f2", "179b7be0fc2dde5216b9eae", "80010204202400000106810", "f62aebc8dd8d2f26d5902da",
	"2b9fcef4c4d3ea91a1134ee", "78ee0b4d86d9d95ecbd4456", "53778a541f9748dadc7f79a", "391e366283a0e08e739879a",
	"6f7570ad6af5070cdc65af8", "299c2e15e274c908e1bd24a", "73640e96eb8f383390696da", "41000000000000000082200",
	"1af492d41fc54adadc7b7b2", "a011024420a401020106812", "71274789a5aef328dc484c0", "12f492d41fc54adadc7b7b2",
	"593d678b3daef3a95c40644", "4ea21c6bc1832dfb4af98ea", "1ad692d487c54adbdc7b7b2", "43cbf55dba49b970803b2f6",
	"88141d4fade611b257bf334", "ed943f4fa5e655305f3d33c", "80010200002000000086010", "ed963f4fadea0531571c33e",
	"2b91af4ca8a4ea2d92e69ca", "9894b89fa958af4bb1e99f6", "ed943f4fa5e655305f2c33c", "efb43f5fa7e655305f3d37c",
	"cb0e8847d3179d8451c49fa", "58bbd1622b5cd2a2355a234", "2b95af49a8acaa2d92e65ca", "12f492d41fc54adadc737b2",
	"ed943f4fa5ea45305f2c33e", "0971777487aba6e61e0bb6c", "dfb8335b82ad9258138bfee", "86c9413f240635be2d81482",
	"1ad692d487e54adbdc7b6b2", "cb0e8847d3179d8451c49fa", "0631cfa22a816ddaf8f3632", "ed375ae60048e29c81f75bc",
	"ed963f4fa5ea45315f2c33e", "c60190128d42fb19cdcaee6", "ae5fca121fa7fc40df171ca", "968a413d244635be2c81482",
	"94bed3eb3bc17d64f1fa338", "0b8a05db6c56e16d5bb528c", "51374789a5aef328cc08544", "45edba6c75d8f2053cd2594",
	"2a179a03f3a31c8650403e8", "2eaab71974a1d0b55af9a86", "35771802b271b3c110b716c",
}

// mnTable holds, for each of the NCode codeword bits, the three 1-based
// check-node indices (in [1, NParity]) that the bit participates in.
var mnTable = [NCode][3]int{
	{63, 50, 31},
	{12, 72, 77},
	{32, 22, 56},
	{39, 28, 53},
	{58, 33, 34},
	{78, 2, 71},
	{47, 73, 45},
	{29, 12, 42},
	{43, 34, 56},
	{11, 61, 28},
	{3, 74, 26},
	{8, 73, 22},
	{13, 46, 44},
	{53, 36, 5},
	{19, 60, 82},
	{13, 27, 60},
	{13, 20, 43},
	{72, 42, 57},
	{44, 69, 56},
	{42, 61, 46},
	{72, 2, 40},
	{54, 75, 79},
	{20, 31, 56},
	{39, 30, 61},
	{66, 65, 48},
	{32, 71, 49},
	{53, 29, 48},
	{39, 45, 59},
	{69, 49, 66},
	{66, 4, 14},
	{28, 26, 40},
	{5, 33, 2},
	{59, 74, 23},
	{51, 63, 30},
	{4, 20, 39},
	{37, 54, 17},
	{74, 9, 78},
	{51, 30, 61},
	{63, 57, 45},
	{1, 57, 21},
	{80, 32, 54},
	{33, 65, 28},
	{55, 44, 38},
	{42, 46, 73},
	{24, 41, 14},
	{4, 70, 52},
	{35, 76, 40},
	{41, 17, 43},
	{25, 62, 57},
	{9, 56, 5},
	{19, 66, 15},
	{24, 30, 73},
	{33, 48, 2},
	{56, 47, 68},
	{47, 35, 54},
	{79, 8, 83},
	{41, 44, 56},
	{40, 23, 30},
	{66, 10, 43},
	{48, 43, 13},
	{75, 20, 83},
	{68, 40, 53},
	{76, 78, 32},
	{69, 82, 73},
	{44, 49, 11},
	{69, 80, 33},
	{15, 1, 51},
	{73, 67, 51},
	{78, 23, 9},
	{73, 29, 61},
	{47, 66, 53},
	{4, 17, 28},
	{12, 31, 4},
	{70, 20, 67},
	{9, 61, 25},
	{13, 9, 81},
	{17, 10, 18},
	{31, 7, 72},
	{12, 27, 48},
	{81, 64, 1},
	{43, 4, 14},
	{5, 83, 40},
	{78, 12, 26},
	{13, 22, 38},
	{20, 69, 22},
	{53, 20, 3},
	{57, 50, 72},
	{20, 27, 68},
	{35, 78, 80},
	{10, 22, 25},
	{8, 52, 48},
	{27, 15, 55},
	{44, 22, 67},
	{50, 15, 11},
	{34, 28, 60},
	{43, 83, 75},
	{79, 39, 75},
	{62, 48, 46},
	{41, 68, 59},
	{63, 40, 47},
	{66, 83, 23},
	{71, 37, 74},
	{7, 8, 32},
	{76, 26, 44},
	{14, 59, 5},
	{11, 73, 33},
	{25, 72, 42},
	{20, 19, 30},
	{3, 45, 25},
	{63, 66, 70},
	{20, 11, 2},
	{16, 49, 63},
	{64, 30, 63},
	{34, 35, 40},
	{66, 71, 48},
	{29, 1, 39},
	{13, 1, 39},
	{53, 78, 56},
	{29, 2, 69},
	{11, 31, 27},
	{75, 54, 80},
	{77, 39, 80},
	{42, 80, 65},
	{10, 40, 19},
	{36, 2, 17},
	{32, 54, 4},
	{69, 15, 43},
	{61, 70, 57},
	{21, 17, 23},
	{71, 7, 42},
	{80, 15, 25},
	{17, 20, 51},
	{30, 80, 19},
	{61, 41, 21},
	{12, 62, 56},
	{74, 58, 34},
	{8, 64, 46},
	{22, 53, 64},
	{18, 58, 21},
	{26, 36, 57},
	{36, 64, 41},
	{80, 38, 74},
	{24, 76, 52},
	{41, 50, 78},
	{56, 81, 45},
	{27, 64, 4},
	{57, 9, 20},
	{83, 59, 14},
	{51, 10, 48},
	{68, 81, 24},
	{3, 73, 66},
	{6, 62, 20},
	{61, 19, 49},
	{14, 49, 47},
	{18, 21, 44},
	{82, 52, 74},
	{77, 47, 41},
	{1, 64, 40},
	{39, 65, 60},
	{26, 38, 51},
	{49, 6, 33},
	{29, 75, 11},
	{50, 51, 53},
	{82, 9, 74},
	{7, 47, 59},
	{23, 52, 24},
	{28, 16, 25},
	{42, 57, 35},
	{21, 57, 83},
	{68, 59, 67},
	{2, 71, 54},
	{27, 55, 46},
	{16, 73, 29},
	{7, 47, 75},
}

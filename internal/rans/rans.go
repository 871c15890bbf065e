// Package rans implements an asymmetric-numeral-system entropy coder over
// a fixed, precomputed 256-entry cumulative distribution. Rare large values
// are handled by decomposing them into a coded "root" plus a raw "suffix"
// of bits, so the fixed table never needs to represent the full range of
// a coefficient.
package rans

import (
	"errors"

	"github.com/baAlex/ako-go/internal/bio"
)

// Fixed coder parameters. StateLen bounds the rANS state register; BLen is
// the renormalization chunk size fed to and read from the bit layer; L is
// the renormalization threshold and M the precision the Cdf table is
// normalized to.
const (
	StateLen = 32
	BLen     = 15
	B        = 1 << BLen
	BMask    = B - 1
	L        = 1 << 16
	MLen     = 16
	M        = 1 << MLen
	MMask    = M - 1

	// InitialState seeds the decoder; the 123 addition is arbitrary, it
	// only needs to match between encoder and decoder.
	InitialState = L + 123
)

// ErrCorrupt is returned by Decode when the coder's final-state check
// fails, meaning the input bitstream does not match what Encode produced.
var ErrCorrupt = errors.New("rans: final state mismatch, corrupt stream")

// ErrOverflow is returned by Encode when its reverse-order bit queue
// reaches maxQueueLength entries, so an oversized input fails instead of
// growing the queue without bound.
var ErrOverflow = errors.New("rans: state overflow while encoding")

type cdfEntry struct {
	root         uint16
	suffixLength uint16
	frequency    uint16
	cumulative   uint16
}

var cdfTable = [256]cdfEntry{
	{root: 0, suffixLength: 0, frequency: 11844, cumulative: 0},
	{root: 2, suffixLength: 0, frequency: 8964, cumulative: 11844},
	{root: 1, suffixLength: 0, frequency: 8230, cumulative: 20808},
	{root: 4, suffixLength: 0, frequency: 4770, cumulative: 29038},
	{root: 3, suffixLength: 0, frequency: 4250, cumulative: 33808},
	{root: 6, suffixLength: 0, frequency: 2735, cumulative: 38058},
	{root: 5, suffixLength: 0, frequency: 2567, cumulative: 40793},
	{root: 8, suffixLength: 0, frequency: 1846, cumulative: 43360},
	{root: 7, suffixLength: 0, frequency: 1737, cumulative: 45206},
	{root: 10, suffixLength: 0, frequency: 1362, cumulative: 46943},
	{root: 9, suffixLength: 0, frequency: 1279, cumulative: 48305},
	{root: 12, suffixLength: 0, frequency: 1059, cumulative: 49584},
	{root: 11, suffixLength: 0, frequency: 992, cumulative: 50643},
	{root: 14, suffixLength: 0, frequency: 851, cumulative: 51635},
	{root: 13, suffixLength: 0, frequency: 795, cumulative: 52486},
	{root: 16, suffixLength: 0, frequency: 703, cumulative: 53281},
	{root: 15, suffixLength: 0, frequency: 656, cumulative: 53984},
	{root: 18, suffixLength: 0, frequency: 587, cumulative: 54640},
	{root: 17, suffixLength: 0, frequency: 549, cumulative: 55227},
	{root: 20, suffixLength: 0, frequency: 500, cumulative: 55776},
	{root: 19, suffixLength: 0, frequency: 466, cumulative: 56276},
	{root: 22, suffixLength: 0, frequency: 431, cumulative: 56742},
	{root: 21, suffixLength: 0, frequency: 400, cumulative: 57173},
	{root: 24, suffixLength: 0, frequency: 373, cumulative: 57573},
	{root: 23, suffixLength: 0, frequency: 347, cumulative: 57946},
	{root: 26, suffixLength: 0, frequency: 326, cumulative: 58293},
	{root: 25, suffixLength: 0, frequency: 303, cumulative: 58619},
	{root: 28, suffixLength: 0, frequency: 286, cumulative: 58922},
	{root: 27, suffixLength: 0, frequency: 266, cumulative: 59208},
	{root: 30, suffixLength: 0, frequency: 253, cumulative: 59474},
	{root: 29, suffixLength: 0, frequency: 236, cumulative: 59727},
	{root: 32, suffixLength: 0, frequency: 226, cumulative: 59963},
	{root: 31, suffixLength: 0, frequency: 210, cumulative: 60189},
	{root: 34, suffixLength: 0, frequency: 203, cumulative: 60399},
	{root: 33, suffixLength: 0, frequency: 188, cumulative: 60602},
	{root: 36, suffixLength: 0, frequency: 182, cumulative: 60790},
	{root: 35, suffixLength: 0, frequency: 170, cumulative: 60972},
	{root: 38, suffixLength: 0, frequency: 164, cumulative: 61142},
	{root: 37, suffixLength: 0, frequency: 152, cumulative: 61306},
	{root: 40, suffixLength: 0, frequency: 148, cumulative: 61458},
	{root: 39, suffixLength: 0, frequency: 139, cumulative: 61606},
	{root: 42, suffixLength: 0, frequency: 135, cumulative: 61745},
	{root: 41, suffixLength: 0, frequency: 127, cumulative: 61880},
	{root: 44, suffixLength: 0, frequency: 122, cumulative: 62007},
	{root: 43, suffixLength: 0, frequency: 114, cumulative: 62129},
	{root: 46, suffixLength: 0, frequency: 112, cumulative: 62243},
	{root: 45, suffixLength: 0, frequency: 106, cumulative: 62355},
	{root: 48, suffixLength: 0, frequency: 100, cumulative: 62461},
	{root: 47, suffixLength: 0, frequency: 97, cumulative: 62561},
	{root: 50, suffixLength: 0, frequency: 93, cumulative: 62658},
	{root: 49, suffixLength: 0, frequency: 89, cumulative: 62751},
	{root: 52, suffixLength: 0, frequency: 85, cumulative: 62840},
	{root: 51, suffixLength: 0, frequency: 82, cumulative: 62925},
	{root: 54, suffixLength: 0, frequency: 78, cumulative: 63007},
	{root: 53, suffixLength: 0, frequency: 76, cumulative: 63085},
	{root: 56, suffixLength: 0, frequency: 72, cumulative: 63161},
	{root: 55, suffixLength: 0, frequency: 70, cumulative: 63233},
	{root: 58, suffixLength: 0, frequency: 66, cumulative: 63303},
	{root: 57, suffixLength: 0, frequency: 64, cumulative: 63369},
	{root: 60, suffixLength: 0, frequency: 61, cumulative: 63433},
	{root: 59, suffixLength: 0, frequency: 60, cumulative: 63494},
	{root: 80, suffixLength: 1, frequency: 58, cumulative: 63554},
	{root: 62, suffixLength: 0, frequency: 57, cumulative: 63612},
	{root: 61, suffixLength: 0, frequency: 56, cumulative: 63669},
	{root: 82, suffixLength: 1, frequency: 55, cumulative: 63725},
	{root: 64, suffixLength: 0, frequency: 53, cumulative: 63780},
	{root: 84, suffixLength: 1, frequency: 52, cumulative: 63833},
	{root: 63, suffixLength: 0, frequency: 51, cumulative: 63885},
	{root: 66, suffixLength: 0, frequency: 49, cumulative: 63936},
	{root: 65, suffixLength: 0, frequency: 48, cumulative: 63985},
	{root: 86, suffixLength: 1, frequency: 48, cumulative: 64033},
	{root: 67, suffixLength: 0, frequency: 45, cumulative: 64081},
	{root: 68, suffixLength: 0, frequency: 45, cumulative: 64126},
	{root: 88, suffixLength: 1, frequency: 45, cumulative: 64171},
	{root: 112, suffixLength: 2, frequency: 43, cumulative: 64216},
	{root: 69, suffixLength: 0, frequency: 42, cumulative: 64259},
	{root: 70, suffixLength: 0, frequency: 42, cumulative: 64301},
	{root: 90, suffixLength: 1, frequency: 42, cumulative: 64343},
	{root: 92, suffixLength: 1, frequency: 40, cumulative: 64385},
	{root: 71, suffixLength: 0, frequency: 39, cumulative: 64425},
	{root: 72, suffixLength: 0, frequency: 39, cumulative: 64464},
	{root: 116, suffixLength: 2, frequency: 39, cumulative: 64503},
	{root: 73, suffixLength: 0, frequency: 37, cumulative: 64542},
	{root: 74, suffixLength: 0, frequency: 37, cumulative: 64579},
	{root: 94, suffixLength: 1, frequency: 37, cumulative: 64616},
	{root: 96, suffixLength: 1, frequency: 35, cumulative: 64653},
	{root: 75, suffixLength: 0, frequency: 34, cumulative: 64688},
	{root: 76, suffixLength: 0, frequency: 34, cumulative: 64722},
	{root: 120, suffixLength: 2, frequency: 34, cumulative: 64756},
	{root: 98, suffixLength: 1, frequency: 33, cumulative: 64790},
	{root: 77, suffixLength: 0, frequency: 32, cumulative: 64823},
	{root: 78, suffixLength: 0, frequency: 32, cumulative: 64855},
	{root: 100, suffixLength: 1, frequency: 31, cumulative: 64887},
	{root: 124, suffixLength: 2, frequency: 31, cumulative: 64918},
	{root: 79, suffixLength: 0, frequency: 30, cumulative: 64949},
	{root: 102, suffixLength: 1, frequency: 29, cumulative: 64979},
	{root: 104, suffixLength: 1, frequency: 28, cumulative: 65008},
	{root: 128, suffixLength: 2, frequency: 28, cumulative: 65036},
	{root: 106, suffixLength: 1, frequency: 25, cumulative: 65064},
	{root: 108, suffixLength: 1, frequency: 25, cumulative: 65089},
	{root: 132, suffixLength: 2, frequency: 25, cumulative: 65114},
	{root: 110, suffixLength: 1, frequency: 23, cumulative: 65139},
	{root: 136, suffixLength: 2, frequency: 23, cumulative: 65162},
	{root: 140, suffixLength: 2, frequency: 20, cumulative: 65185},
	{root: 144, suffixLength: 2, frequency: 18, cumulative: 65205},
	{root: 148, suffixLength: 2, frequency: 16, cumulative: 65223},
	{root: 176, suffixLength: 3, frequency: 16, cumulative: 65239},
	{root: 152, suffixLength: 2, frequency: 15, cumulative: 65255},
	{root: 156, suffixLength: 2, frequency: 13, cumulative: 65270},
	{root: 184, suffixLength: 3, frequency: 13, cumulative: 65283},
	{root: 160, suffixLength: 2, frequency: 12, cumulative: 65296},
	{root: 164, suffixLength: 2, frequency: 6, cumulative: 65308},
	{root: 168, suffixLength: 2, frequency: 1, cumulative: 65314},
	{root: 172, suffixLength: 2, frequency: 1, cumulative: 65315},
	{root: 192, suffixLength: 3, frequency: 1, cumulative: 65316},
	{root: 200, suffixLength: 3, frequency: 1, cumulative: 65317},
	{root: 208, suffixLength: 3, frequency: 1, cumulative: 65318},
	{root: 216, suffixLength: 3, frequency: 1, cumulative: 65319},
	{root: 224, suffixLength: 3, frequency: 1, cumulative: 65320},
	{root: 232, suffixLength: 3, frequency: 1, cumulative: 65321},
	{root: 240, suffixLength: 3, frequency: 1, cumulative: 65322},
	{root: 248, suffixLength: 3, frequency: 1, cumulative: 65323},
	{root: 256, suffixLength: 3, frequency: 1, cumulative: 65324},
	{root: 264, suffixLength: 3, frequency: 1, cumulative: 65325},
	{root: 272, suffixLength: 3, frequency: 1, cumulative: 65326},
	{root: 280, suffixLength: 3, frequency: 1, cumulative: 65327},
	{root: 288, suffixLength: 3, frequency: 1, cumulative: 65328},
	{root: 296, suffixLength: 3, frequency: 1, cumulative: 65329},
	{root: 304, suffixLength: 4, frequency: 1, cumulative: 65330},
	{root: 320, suffixLength: 4, frequency: 1, cumulative: 65331},
	{root: 336, suffixLength: 4, frequency: 1, cumulative: 65332},
	{root: 352, suffixLength: 4, frequency: 1, cumulative: 65333},
	{root: 368, suffixLength: 4, frequency: 1, cumulative: 65334},
	{root: 384, suffixLength: 4, frequency: 1, cumulative: 65335},
	{root: 400, suffixLength: 4, frequency: 1, cumulative: 65336},
	{root: 416, suffixLength: 4, frequency: 1, cumulative: 65337},
	{root: 432, suffixLength: 4, frequency: 1, cumulative: 65338},
	{root: 448, suffixLength: 4, frequency: 1, cumulative: 65339},
	{root: 464, suffixLength: 4, frequency: 1, cumulative: 65340},
	{root: 480, suffixLength: 4, frequency: 1, cumulative: 65341},
	{root: 496, suffixLength: 4, frequency: 1, cumulative: 65342},
	{root: 512, suffixLength: 4, frequency: 1, cumulative: 65343},
	{root: 528, suffixLength: 4, frequency: 1, cumulative: 65344},
	{root: 544, suffixLength: 4, frequency: 1, cumulative: 65345},
	{root: 560, suffixLength: 5, frequency: 1, cumulative: 65346},
	{root: 592, suffixLength: 5, frequency: 1, cumulative: 65347},
	{root: 624, suffixLength: 5, frequency: 1, cumulative: 65348},
	{root: 656, suffixLength: 5, frequency: 1, cumulative: 65349},
	{root: 688, suffixLength: 5, frequency: 1, cumulative: 65350},
	{root: 720, suffixLength: 5, frequency: 1, cumulative: 65351},
	{root: 752, suffixLength: 5, frequency: 1, cumulative: 65352},
	{root: 784, suffixLength: 5, frequency: 1, cumulative: 65353},
	{root: 816, suffixLength: 5, frequency: 1, cumulative: 65354},
	{root: 848, suffixLength: 5, frequency: 1, cumulative: 65355},
	{root: 880, suffixLength: 5, frequency: 1, cumulative: 65356},
	{root: 912, suffixLength: 5, frequency: 1, cumulative: 65357},
	{root: 944, suffixLength: 5, frequency: 1, cumulative: 65358},
	{root: 976, suffixLength: 5, frequency: 1, cumulative: 65359},
	{root: 1008, suffixLength: 5, frequency: 1, cumulative: 65360},
	{root: 1040, suffixLength: 5, frequency: 1, cumulative: 65361},
	{root: 1072, suffixLength: 6, frequency: 1, cumulative: 65362},
	{root: 1136, suffixLength: 6, frequency: 1, cumulative: 65363},
	{root: 1200, suffixLength: 6, frequency: 1, cumulative: 65364},
	{root: 1264, suffixLength: 6, frequency: 1, cumulative: 65365},
	{root: 1328, suffixLength: 6, frequency: 1, cumulative: 65366},
	{root: 1392, suffixLength: 6, frequency: 1, cumulative: 65367},
	{root: 1456, suffixLength: 6, frequency: 1, cumulative: 65368},
	{root: 1520, suffixLength: 6, frequency: 1, cumulative: 65369},
	{root: 1584, suffixLength: 6, frequency: 1, cumulative: 65370},
	{root: 1648, suffixLength: 6, frequency: 1, cumulative: 65371},
	{root: 1712, suffixLength: 6, frequency: 1, cumulative: 65372},
	{root: 1776, suffixLength: 6, frequency: 1, cumulative: 65373},
	{root: 1840, suffixLength: 6, frequency: 1, cumulative: 65374},
	{root: 1904, suffixLength: 6, frequency: 1, cumulative: 65375},
	{root: 1968, suffixLength: 6, frequency: 1, cumulative: 65376},
	{root: 2032, suffixLength: 6, frequency: 1, cumulative: 65377},
	{root: 2096, suffixLength: 7, frequency: 1, cumulative: 65378},
	{root: 2224, suffixLength: 7, frequency: 1, cumulative: 65379},
	{root: 2352, suffixLength: 7, frequency: 1, cumulative: 65380},
	{root: 2480, suffixLength: 7, frequency: 1, cumulative: 65381},
	{root: 2608, suffixLength: 7, frequency: 1, cumulative: 65382},
	{root: 2736, suffixLength: 7, frequency: 1, cumulative: 65383},
	{root: 2864, suffixLength: 7, frequency: 1, cumulative: 65384},
	{root: 2992, suffixLength: 7, frequency: 1, cumulative: 65385},
	{root: 3120, suffixLength: 7, frequency: 1, cumulative: 65386},
	{root: 3248, suffixLength: 7, frequency: 1, cumulative: 65387},
	{root: 3376, suffixLength: 7, frequency: 1, cumulative: 65388},
	{root: 3504, suffixLength: 7, frequency: 1, cumulative: 65389},
	{root: 3632, suffixLength: 7, frequency: 1, cumulative: 65390},
	{root: 3760, suffixLength: 7, frequency: 1, cumulative: 65391},
	{root: 3888, suffixLength: 7, frequency: 1, cumulative: 65392},
	{root: 4016, suffixLength: 7, frequency: 1, cumulative: 65393},
	{root: 4144, suffixLength: 8, frequency: 1, cumulative: 65394},
	{root: 4400, suffixLength: 8, frequency: 1, cumulative: 65395},
	{root: 4656, suffixLength: 8, frequency: 1, cumulative: 65396},
	{root: 4912, suffixLength: 8, frequency: 1, cumulative: 65397},
	{root: 5168, suffixLength: 8, frequency: 1, cumulative: 65398},
	{root: 5424, suffixLength: 8, frequency: 1, cumulative: 65399},
	{root: 5680, suffixLength: 8, frequency: 1, cumulative: 65400},
	{root: 5936, suffixLength: 8, frequency: 1, cumulative: 65401},
	{root: 6192, suffixLength: 8, frequency: 1, cumulative: 65402},
	{root: 6448, suffixLength: 8, frequency: 1, cumulative: 65403},
	{root: 6704, suffixLength: 8, frequency: 1, cumulative: 65404},
	{root: 6960, suffixLength: 8, frequency: 1, cumulative: 65405},
	{root: 7216, suffixLength: 8, frequency: 1, cumulative: 65406},
	{root: 7472, suffixLength: 8, frequency: 1, cumulative: 65407},
	{root: 7728, suffixLength: 8, frequency: 1, cumulative: 65408},
	{root: 7984, suffixLength: 8, frequency: 1, cumulative: 65409},
	{root: 8240, suffixLength: 9, frequency: 1, cumulative: 65410},
	{root: 8752, suffixLength: 9, frequency: 1, cumulative: 65411},
	{root: 9264, suffixLength: 9, frequency: 1, cumulative: 65412},
	{root: 9776, suffixLength: 9, frequency: 1, cumulative: 65413},
	{root: 10288, suffixLength: 9, frequency: 1, cumulative: 65414},
	{root: 10800, suffixLength: 9, frequency: 1, cumulative: 65415},
	{root: 11312, suffixLength: 9, frequency: 1, cumulative: 65416},
	{root: 11824, suffixLength: 9, frequency: 1, cumulative: 65417},
	{root: 12336, suffixLength: 9, frequency: 1, cumulative: 65418},
	{root: 12848, suffixLength: 9, frequency: 1, cumulative: 65419},
	{root: 13360, suffixLength: 9, frequency: 1, cumulative: 65420},
	{root: 13872, suffixLength: 9, frequency: 1, cumulative: 65421},
	{root: 14384, suffixLength: 9, frequency: 1, cumulative: 65422},
	{root: 14896, suffixLength: 9, frequency: 1, cumulative: 65423},
	{root: 15408, suffixLength: 9, frequency: 1, cumulative: 65424},
	{root: 15920, suffixLength: 9, frequency: 1, cumulative: 65425},
	{root: 16432, suffixLength: 10, frequency: 1, cumulative: 65426},
	{root: 17456, suffixLength: 10, frequency: 1, cumulative: 65427},
	{root: 18480, suffixLength: 10, frequency: 1, cumulative: 65428},
	{root: 19504, suffixLength: 10, frequency: 1, cumulative: 65429},
	{root: 20528, suffixLength: 10, frequency: 1, cumulative: 65430},
	{root: 21552, suffixLength: 10, frequency: 1, cumulative: 65431},
	{root: 22576, suffixLength: 10, frequency: 1, cumulative: 65432},
	{root: 23600, suffixLength: 10, frequency: 1, cumulative: 65433},
	{root: 24624, suffixLength: 10, frequency: 1, cumulative: 65434},
	{root: 25648, suffixLength: 10, frequency: 1, cumulative: 65435},
	{root: 26672, suffixLength: 10, frequency: 1, cumulative: 65436},
	{root: 27696, suffixLength: 10, frequency: 1, cumulative: 65437},
	{root: 28720, suffixLength: 10, frequency: 1, cumulative: 65438},
	{root: 29744, suffixLength: 10, frequency: 1, cumulative: 65439},
	{root: 30768, suffixLength: 10, frequency: 1, cumulative: 65440},
	{root: 31792, suffixLength: 10, frequency: 1, cumulative: 65441},
	{root: 32816, suffixLength: 11, frequency: 1, cumulative: 65442},
	{root: 34864, suffixLength: 11, frequency: 1, cumulative: 65443},
	{root: 36912, suffixLength: 11, frequency: 1, cumulative: 65444},
	{root: 38960, suffixLength: 11, frequency: 1, cumulative: 65445},
	{root: 41008, suffixLength: 11, frequency: 1, cumulative: 65446},
	{root: 43056, suffixLength: 11, frequency: 1, cumulative: 65447},
	{root: 45104, suffixLength: 11, frequency: 1, cumulative: 65448},
	{root: 47152, suffixLength: 11, frequency: 1, cumulative: 65449},
	{root: 49200, suffixLength: 11, frequency: 1, cumulative: 65450},
	{root: 51248, suffixLength: 11, frequency: 1, cumulative: 65451},
	{root: 53296, suffixLength: 11, frequency: 1, cumulative: 65452},
	{root: 55344, suffixLength: 11, frequency: 1, cumulative: 65453},
	{root: 57392, suffixLength: 11, frequency: 1, cumulative: 65454},
	{root: 59440, suffixLength: 11, frequency: 1, cumulative: 65455},
	{root: 61488, suffixLength: 11, frequency: 1, cumulative: 65456},
	{root: 63536, suffixLength: 11, frequency: 1, cumulative: 65457},
}

// encodeSymbol maps value to a code: values under 247 code themselves;
// larger values map to 247 + (bit length of value) - 8, which rootOfCode
// and suffixLengthOfCode turn into a (root=0, suffix) pair. Encode does not
// use this mapping: it selects the cdfTable entry whose range holds the
// value.
func encodeSymbol(value uint16) uint8 {
	if value < 247 {
		return uint8(value)
	}

	e := 0
	for uint32(value) >= (uint32(1) << uint(e)) {
		e++
	}
	return uint8(247 + e - 8)
}

func rootOfCode(code uint8) uint16 {
	if code < 247 {
		return uint16(code)
	}
	return 0
}

func suffixLengthOfCode(code uint8) uint16 {
	if code < 247 {
		return 0
	}
	return uint16(code) - 247 + 8
}

func findByRootSuffix(root, suffixLength uint16) cdfEntry {
	for i := range cdfTable {
		if cdfTable[i].root == root && cdfTable[i].suffixLength == suffixLength {
			return cdfTable[i]
		}
	}
	return cdfTable[len(cdfTable)-1]
}

func findByCumulative(modulo uint32) cdfEntry {
	e := cdfTable[len(cdfTable)-1]
	for u := 1; u < len(cdfTable); u++ {
		if uint32(cdfTable[u].cumulative) > modulo {
			e = cdfTable[u-1]
			break
		}
	}
	return e
}

type queued struct {
	value  uint32
	length uint32
}

// Encode entropy-codes input and writes the resulting bitstream to w.
// Symbols are processed in reverse (an rANS coder's natural direction);
// the queued bits are flushed to w in the opposite order so a decoder
// reading forward recovers the symbols in their original order.
func Encode(w *bio.Writer, input []uint16) error {
	state := uint32(InitialState)
	queue := make([]queued, 0, len(input)+4)

	for i := len(input) - 1; i >= 0; i-- {
		// The entry whose [root, root + 2^suffixLength) range holds the
		// value, so the decoder's root + suffix recovers it exactly.
		e := cdfTable[len(cdfTable)-1]
		for _, c := range cdfTable {
			if input[i] >= c.root && uint32(input[i]-c.root) < uint32(1)<<c.suffixLength {
				e = c
				break
			}
		}

		for {
			overflow := state/uint32(e.frequency) > (uint32(1)<<(StateLen-MLen))-1
			tooLarge := false
			if !overflow {
				tooLarge = (state/uint32(e.frequency))<<MLen+state%uint32(e.frequency)+uint32(e.cumulative) > L*B-1
			}
			if !overflow && !tooLarge {
				break
			}

			if len(queue) >= maxQueueLength {
				return ErrOverflow
			}
			bits := state & BMask
			state >>= BLen
			queue = append(queue, queued{bits, BLen})
		}

		state = (state/uint32(e.frequency))<<MLen + state%uint32(e.frequency) + uint32(e.cumulative)

		if e.suffixLength != 0 {
			if len(queue) >= maxQueueLength {
				return ErrOverflow
			}
			queue = append(queue, queued{uint32(input[i]) - uint32(e.root), uint32(e.suffixLength)})
		}
	}

	for state != 0 {
		bits := state & BMask
		state >>= BLen
		queue = append(queue, queued{bits, BLen})
	}

	for i := len(queue) - 1; i >= 0; i-- {
		if err := w.Write(queue[i].value, queue[i].length); err != nil {
			return err
		}
	}
	return nil
}

// maxQueueLength bounds the reverse-order bit queue; well past anything a
// single tile quadrant should ever need, it exists only to fail safely
// instead of growing without bound on malformed settings.
const maxQueueLength = 1 << 24

// Decode recovers output_length symbols from r, written by a matching
// Encode call. It returns ErrCorrupt if the coder's final-state
// invariant does not hold, meaning the bitstream is not a valid rANS
// encoding of any sequence of that length.
func Decode(r *bio.Reader, output []uint16) error {
	state := uint32(0)

	for i := 0; i < len(output); i++ {
		for state < L {
			word, err := r.Read(BLen)
			if err != nil {
				return err
			}
			state = (state << BLen) | word
		}

		modulo := state & MMask
		e := findByCumulative(modulo)

		suffix, err := r.Read(uint32(e.suffixLength))
		if err != nil {
			return err
		}
		output[i] = uint16(uint32(e.root) + suffix)

		state = uint32(e.frequency)*(state>>MLen) + modulo - uint32(e.cumulative)
	}

	for state < L {
		word, err := r.Read(BLen)
		if err != nil {
			return err
		}
		state = (state << BLen) | word
	}

	if state != InitialState {
		return ErrCorrupt
	}
	return nil
}

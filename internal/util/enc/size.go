package enc

import "math"

var log256 = math.Log(256)

// EncodedLen estimates the number of symbols needed to represent n bytes in the given radix:
// n * log(256) / log(radix), rounded up, plus one symbol of safety margin.
func EncodedLen(radix, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n)*log256/math.Log(float64(radix)))) + 1
}

// DecodedLen estimates the number of bytes represented by n symbols in the given radix:
// n * log(radix) / log(256), rounded up, plus one byte of safety margin.
//
// Each leading leader symbol decodes into a full zero byte, so strings with long runs of leader
// symbols may need more room than estimated.
func DecodedLen(radix, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n)*math.Log(float64(radix))/log256)) + 1
}

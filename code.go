package huffpack

import (
	"fmt"
)

// maxCodeBits is the longest code a table may carry.  Bits is a uint64, and a
// 65-bit code needs a Fibonacci-shaped frequency distribution over an input
// north of 10^13 symbols.
const maxCodeBits = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits, at most maxCodeBits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit in the
	// sequence is the most significant of the Size low bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// AppendBit returns the Code extended by one trailing bit.
func (hc Code) AppendBit(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// String returns the bitstring representation of this Code, e.g. "0101".
func (hc Code) String() string {
	if hc.Size == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(hc.Size), hc.Bits)
}

// ParseCode parses a bitstring of '0' and '1' characters into a Code.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, fmt.Errorf("empty bitstring")
	}
	if len(s) > maxCodeBits {
		return Code{}, fmt.Errorf("bitstring %q is longer than %d bits", s, maxCodeBits)
	}
	var hc Code
	for _, c := range s {
		switch c {
		case '0':
			hc = hc.AppendBit(0)
		case '1':
			hc = hc.AppendBit(1)
		default:
			return Code{}, fmt.Errorf("bitstring %q contains %q", s, c)
		}
	}
	return hc, nil
}

var _ fmt.Stringer = Code{}

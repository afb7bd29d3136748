package huffpack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack concatenates the code of each symbol of text in input order,
// most-significant-bit-first within each byte, and zero-pads the result to
// the next byte boundary.  It returns the packed bytes and the unpadded bit
// length.  A symbol missing from the table is an *EncodingError.
func Pack(text string, table CodeTable) ([]byte, uint64, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var bitLen uint64
	for _, r := range text {
		hc, ok := table[r]
		if !ok {
			return nil, 0, &EncodingError{Symbol: r}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, err
		}
		bitLen += uint64(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	assert.Assertf(uint64(buf.Len()) == (bitLen+7)/8, "packed %d bytes for %d bits", buf.Len(), bitLen)
	return buf.Bytes(), bitLen, nil
}

// Unpack decodes exactly bitLen bits of packed back into text.  Bits are
// scanned left to right, accumulating a candidate code until it matches an
// entry of the inverted table.  Bits that never resolve to a code, and a
// stream that ends in the middle of a code, are a *DecodingError.
func Unpack(packed []byte, bitLen uint64, table CodeTable) (string, error) {
	return unpack(packed, bitLen, table, false)
}

// UnpackAll decodes every bit of packed, including the zero padding appended
// by Pack.
//
// Deprecated: this is the legacy no-length format.  Padding bits that happen
// to form a valid code decode as phantom trailing symbols, and a trailing
// partial code is silently dropped.  New packages carry an explicit bit
// length; use Unpack.
func UnpackAll(packed []byte, table CodeTable) (string, error) {
	return unpack(packed, uint64(len(packed))*8, table, true)
}

func unpack(packed []byte, bitLen uint64, table CodeTable, ignoreTrailing bool) (string, error) {
	if bitLen == 0 {
		return "", nil
	}
	if packedBits := uint64(len(packed)) * 8; bitLen > packedBits {
		return "", &DecodingError{Offset: packedBits, Reason: fmt.Sprintf("bit length %d exceeds the %d packed bits", bitLen, packedBits)}
	}

	reverse, maxSize, err := table.invert()
	if err != nil {
		return "", err
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	var out strings.Builder
	var cur Code
	for pos := uint64(0); pos < bitLen; pos++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", &DecodingError{Offset: pos, Reason: err.Error()}
		}
		if bit {
			cur = cur.AppendBit(1)
		} else {
			cur = cur.AppendBit(0)
		}
		if symbol, found := reverse[cur]; found {
			out.WriteRune(symbol)
			cur = Code{}
			continue
		}
		if cur.Size >= maxSize {
			return "", &DecodingError{Offset: pos, Reason: fmt.Sprintf("bit sequence %q matches no code", cur)}
		}
	}
	if cur.Size != 0 && !ignoreTrailing {
		return "", &DecodingError{Offset: bitLen, Reason: fmt.Sprintf("stream ends inside code %q", cur)}
	}
	return out.String(), nil
}

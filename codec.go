package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// Package pairs the packed bitstream with the code table that decodes it.
// Together they are necessary and sufficient to reconstruct the original
// text.
type Package struct {
	// Data is the packed bitstream: code bits in input order, zero-padded
	// to a byte boundary.
	Data []byte

	// Table maps each symbol of the input alphabet to its code.
	Table CodeTable

	// BitLength is the number of valid bits in Data, before padding.  A
	// value of 0 with non-empty Data marks a package in the legacy format,
	// which carried no length and decodes with UnpackAll.
	BitLength uint64
}

// Compress encodes text into a Package.  Identical input produces
// byte-identical output on every call; the tree builder breaks weight ties
// deterministically.  An empty text compresses to an empty Package.
func Compress(text string) (*Package, error) {
	freq := CountRunes(text)
	if len(freq) == 0 {
		return &Package{Table: make(CodeTable)}, nil
	}

	table, err := NewCodeTable(buildTree(freq))
	if err != nil {
		return nil, err
	}
	assert.Assertf(len(table) == len(freq), "table has %d codes for %d distinct symbols", len(table), len(freq))

	data, bitLen, err := Pack(text, table)
	if err != nil {
		return nil, err
	}
	return &Package{Data: data, Table: table, BitLength: bitLen}, nil
}

// Decompress reconstructs the original text of pkg.  A package carrying no
// bit length is decoded in the legacy compat mode and inherits its
// trailing-padding caveat; see UnpackAll.
func Decompress(pkg *Package) (string, error) {
	if len(pkg.Data) == 0 && pkg.BitLength == 0 {
		return "", nil
	}
	if pkg.BitLength == 0 {
		return UnpackAll(pkg.Data, pkg.Table)
	}
	return Unpack(pkg.Data, pkg.BitLength, pkg.Table)
}

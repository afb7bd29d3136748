package huffpack

import (
	"fmt"
)

// EncodingError reports an input symbol with no entry in the code table.  A
// table built from the same input always covers every symbol, so hitting this
// during Compress indicates an internal inconsistency.
type EncodingError struct {
	// Symbol is the input symbol that has no code.
	Symbol rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("huffpack: no code for symbol %q", e.Symbol)
}

// CorruptTableError reports a code table that cannot decode unambiguously:
// an empty code, two symbols sharing one code, or a code that is a prefix of
// another.
type CorruptTableError struct {
	// Symbol is the table entry at which the problem was detected.
	Symbol rune

	// Code is that entry's code.
	Code Code

	// Reason describes what is wrong with the entry.
	Reason string
}

func (e *CorruptTableError) Error() string {
	return fmt.Sprintf("huffpack: corrupt code table at symbol %q (code %q): %s", e.Symbol, e.Code, e.Reason)
}

// DecodingError reports a packed bitstream that does not resolve against the
// supplied code table: a malformed or mismatched package.
type DecodingError struct {
	// Offset is the bit offset at which decoding failed.
	Offset uint64

	// Reason describes the failure.
	Reason string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("huffpack: malformed or mismatched package at bit %d: %s", e.Offset, e.Reason)
}

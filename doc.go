// Package huffpack implements a lossless Huffman codec for text.  It derives
// a prefix-free variable-length code from the symbol frequencies of an input
// text, packs the coded text into a byte-aligned bitstream, and reconstructs
// the original text from the bitstream and its code table.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack

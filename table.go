package huffpack

import (
	"fmt"
)

// CodeTable maps each symbol of the alphabet to its code.  Tables produced by
// NewCodeTable are prefix-free: codes are leaf paths in a binary tree, and no
// leaf is an ancestor of another.
type CodeTable map[rune]Code

// NewCodeTable derives the code table from a Huffman tree, appending a 0 bit
// when descending left and a 1 bit when descending right.  The walk uses an
// explicit stack; a deep, skewed tree must not exhaust the call stack.
//
// A single-leaf tree has no path to encode, so its one symbol gets the
// one-bit code "0".  A nil root yields an empty table.
func NewCodeTable(root *node) (CodeTable, error) {
	table := make(CodeTable)
	if root == nil {
		return table, nil
	}
	if root.isLeaf() {
		table[root.symbol] = MakeCode(1, 0)
		return table, nil
	}

	type frame struct {
		n  *node
		hc Code
	}
	stack := []frame{{root, Code{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.n.isLeaf() {
			table[top.n.symbol] = top.hc
			continue
		}
		if top.hc.Size >= maxCodeBits {
			return nil, fmt.Errorf("huffman code longer than %d bits", maxCodeBits)
		}
		stack = append(stack, frame{top.n.right, top.hc.AppendBit(1)})
		stack = append(stack, frame{top.n.left, top.hc.AppendBit(0)})
	}
	return table, nil
}

// invert builds the reverse code-to-symbol map used for decoding, along with
// the size of the longest code.  Tables that cannot decode unambiguously are
// rejected with a *CorruptTableError: empty codes, duplicate codes, and codes
// that are a proper prefix of another.
func (t CodeTable) invert() (map[Code]rune, byte, error) {
	reverse := make(map[Code]rune, len(t))
	var maxSize byte
	for r, hc := range t {
		if hc.Size == 0 {
			return nil, 0, &CorruptTableError{Symbol: r, Code: hc, Reason: "empty code"}
		}
		if prev, dup := reverse[hc]; dup {
			return nil, 0, &CorruptTableError{Symbol: r, Code: hc, Reason: fmt.Sprintf("duplicate of the code of %q", prev)}
		}
		reverse[hc] = r
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	for r, hc := range t {
		p := hc
		for p.Size > 1 {
			p = Code{Size: p.Size - 1, Bits: p.Bits >> 1}
			if other, found := reverse[p]; found {
				return nil, 0, &CorruptTableError{Symbol: r, Code: hc, Reason: fmt.Sprintf("the code of %q is a prefix", other)}
			}
		}
	}
	return reverse, maxSize, nil
}

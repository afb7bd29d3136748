package huffpack

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// node is one node of the Huffman tree.  Leaf nodes carry a symbol; internal
// nodes carry two children and the sum of their weights.  Either both
// children are nil or both are set.
type node struct {
	symbol      rune
	weight      int
	seq         int
	left, right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// buildTree runs the greedy minimum-merge algorithm: repeatedly pop the two
// lightest nodes, merge them under a fresh internal node (first pop on the
// left), and push the merge back, until one node remains.
//
// Leaves enter the heap in ascending symbol order and every node carries a
// monotonically increasing sequence number.  Ties on weight break toward the
// lower sequence number, so equal-weight nodes merge first-inserted-first and
// the tree is the same on every run.
func buildTree(freq FrequencyMap) *node {
	assert.Assertf(len(freq) > 0, "buildTree called with an empty frequency map")

	symbols := make([]rune, 0, len(freq))
	for r := range freq {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := make(nodeHeap, 0, len(symbols))
	seq := 0
	for _, r := range symbols {
		h = append(h, &node{symbol: r, weight: freq[r], seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{weight: a.weight + b.weight, seq: seq, left: a, right: b})
		seq++
	}

	root := heap.Pop(&h).(*node)
	assert.Assertf(h.Len() == 0, "%d nodes left in the heap after the final merge", h.Len())
	return root
}

// nodeHeap is a min-heap over (weight, seq).
type nodeHeap []*node

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

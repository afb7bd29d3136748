package huffpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func weightedPathLength(t *testing.T, freq FrequencyMap) int {
	t.Helper()
	table, err := NewCodeTable(buildTree(freq))
	require.NoError(t, err)
	wpl := 0
	for r, hc := range table {
		wpl += freq[r] * int(hc.Size)
	}
	return wpl
}

func TestBuildTreeOptimality(t *testing.T) {
	// The classic example: optimal code lengths are {4, 4, 3, 3, 3, 1},
	// for a weighted path length of 224.
	freq := FrequencyMap{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	require.Equal(t, 224, weightedPathLength(t, freq))
}

func TestBuildTreeOptimalityUniform(t *testing.T) {
	// Four equally likely symbols get two bits each.
	freq := FrequencyMap{'a': 1, 'b': 1, 'c': 1, 'd': 1}
	require.Equal(t, 8, weightedPathLength(t, freq))
}

func TestBuildTreeDeterministic(t *testing.T) {
	// All weights tie, so the result hinges entirely on the tie-break.
	freq := FrequencyMap{'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1}
	first, err := NewCodeTable(buildTree(freq))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NewCodeTable(buildTree(freq))
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestBuildTreeNodeCounts(t *testing.T) {
	// A strict binary tree over n symbols has n leaves and n-1 internal
	// nodes.
	freq := CountRunes("abracadabra")
	leaves, internal := 0, 0
	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			leaves++
			return
		}
		internal++
		walk(n.left)
		walk(n.right)
	}
	walk(buildTree(freq))
	require.Equal(t, len(freq), leaves)
	require.Equal(t, len(freq)-1, internal)
}

func TestBuildTreeWeights(t *testing.T) {
	freq := CountRunes("abracadabra")
	root := buildTree(freq)
	require.Equal(t, 11, root.weight)

	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			require.Equal(t, freq[n.symbol], n.weight)
			return
		}
		require.Equal(t, n.left.weight+n.right.weight, n.weight)
		walk(n.left)
		walk(n.right)
	}
	walk(root)
}

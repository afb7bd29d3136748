package huffpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountRunes(t *testing.T) {
	freq := CountRunes("abracadabra")
	require.Equal(t, FrequencyMap{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}, freq)
}

func TestCountRunesEmpty(t *testing.T) {
	require.Empty(t, CountRunes(""))
}

func TestCountRunesMultibyte(t *testing.T) {
	freq := CountRunes("héhé")
	require.Equal(t, FrequencyMap{'h': 2, 'é': 2}, freq)
}

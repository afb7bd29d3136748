package huffpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	require.Equal(t, "", Code{}.String())
	require.Equal(t, "0", MakeCode(1, 0).String())
	require.Equal(t, "1", MakeCode(1, 1).String())
	require.Equal(t, "0101", MakeCode(4, 0b0101).String())
}

func TestAppendBit(t *testing.T) {
	var hc Code
	hc = hc.AppendBit(1)
	hc = hc.AppendBit(0)
	hc = hc.AppendBit(1)
	require.Equal(t, MakeCode(3, 0b101), hc)
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0101")
	require.NoError(t, err)
	require.Equal(t, MakeCode(4, 0b0101), hc)
}

func TestParseCodeRejects(t *testing.T) {
	for name, bits := range map[string]string{
		"empty":      "",
		"non-binary": "01a",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCode(bits)
			require.Error(t, err)
		})
	}
}

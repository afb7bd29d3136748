package archive

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"huffpack"
)

func TestWriteReadRoundTrip(t *testing.T) {
	pkg, err := huffpack.Compress("abracadabra")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, pkg))

	got, err := Read(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, pkg.Data, got.Data)
	require.Equal(t, pkg.Table, got.Table)
	require.Equal(t, pkg.BitLength, got.BitLength)

	text, err := huffpack.Decompress(got)
	require.NoError(t, err)
	require.Equal(t, "abracadabra", text)
}

func TestReadNotZip(t *testing.T) {
	_, err := Read([]byte("not a zip"))
	require.Error(t, err)
}

func TestReadMissingEntries(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("something_else.txt")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Read(buf.Bytes())
	require.Error(t, err)
}

func TestReadLegacyCodesJSON(t *testing.T) {
	// Archives written by the legacy tool hold a bare char-to-bitstring
	// map and no bit length; decoding falls back to the compat mode.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("compressed.bin")
	require.NoError(t, err)
	_, err = f.Write([]byte{0x58}) // 0 10 11 000 under the table below
	require.NoError(t, err)
	f, err = zw.Create("codes.json")
	require.NoError(t, err)
	_, err = f.Write([]byte(`{"a":"0","b":"10","c":"11"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	pkg, err := Read(buf.Bytes())
	require.NoError(t, err)
	require.Zero(t, pkg.BitLength)

	text, err := huffpack.Decompress(pkg)
	require.NoError(t, err)
	require.Equal(t, "abcaaa", text)
}

// Package archive reads and writes the on-disk compression package: a zip
// holding compressed.bin (the packed bitstream) and codes.json (the code
// table document).  The entry names match the legacy tool, and a legacy
// codes.json that is a bare character-to-bitstring map is still accepted.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"huffpack"
)

const (
	dataEntry  = "compressed.bin"
	tableEntry = "codes.json"
)

// Write writes pkg to w as a zip archive.
func Write(w io.Writer, pkg *huffpack.Package) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create(dataEntry)
	if err != nil {
		return err
	}
	if _, err := f.Write(pkg.Data); err != nil {
		return err
	}

	doc, err := json.Marshal(pkg)
	if err != nil {
		return err
	}
	f, err = zw.Create(tableEntry)
	if err != nil {
		return err
	}
	if _, err := f.Write(doc); err != nil {
		return err
	}

	return zw.Close()
}

// Read parses a zip archive produced by Write or by the legacy tool.
func Read(data []byte) (*huffpack.Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}

	var pkg huffpack.Package
	var haveData, haveTable bool
	for _, zf := range zr.File {
		switch zf.Name {
		case dataEntry:
			b, err := readEntry(zf)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", dataEntry, err)
			}
			pkg.Data = b
			haveData = true
		case tableEntry:
			b, err := readEntry(zf)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", tableEntry, err)
			}
			if err := json.Unmarshal(b, &pkg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", tableEntry, err)
			}
			haveTable = true
		}
	}
	if !haveData || !haveTable {
		return nil, fmt.Errorf("package must contain %s and %s", dataEntry, tableEntry)
	}
	return &pkg, nil
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

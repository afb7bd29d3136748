// Huffman package encoder / decoder.
//
// huffpack encode filename
//   Creates filename.hpk, a zip holding compressed.bin and codes.json.
//
// huffpack decode filename.hpk
//   Recreates filename.
package main

import (
	"fmt"
	"os"
	"strings"

	"huffpack"
	"huffpack/internal/archive"
)

func main() {
	args := os.Args[1:]
	var err error
	switch {
	case len(args) == 2 && args[0] == "encode":
		err = encodeFile(args[1])
	case len(args) == 2 && args[0] == "decode":
		err = decodeFile(args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: huffpack encode <file> | huffpack decode <file>.hpk")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		os.Exit(1)
	}
}

func encodeFile(fn string) error {
	text, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	pkg, err := huffpack.Compress(string(text))
	if err != nil {
		return err
	}
	out, err := os.Create(fn + ".hpk")
	if err != nil {
		return err
	}
	if err := archive.Write(out, pkg); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func decodeFile(fn string) error {
	if !strings.HasSuffix(fn, ".hpk") {
		return fmt.Errorf("file to decode must be named something.hpk")
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	pkg, err := archive.Read(data)
	if err != nil {
		return err
	}
	text, err := huffpack.Decompress(pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(fn, ".hpk"), []byte(text), 0o644)
}

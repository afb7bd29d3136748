// Package service orchestrates the codec for the transport shells.
package service

import (
	"bytes"
	"fmt"

	"huffpack"
	"huffpack/internal/archive"
	"huffpack/pkg/logger"
)

// CodecService compresses raw text into zip packages and back.  It is
// stateless; concurrent calls share nothing.
type CodecService struct {
	log logger.Logger
}

func NewCodecService(log logger.Logger) *CodecService {
	return &CodecService{log: log}
}

// CompressText compresses text and returns the zip package bytes.
func (s *CodecService) CompressText(text []byte) ([]byte, error) {
	pkg, err := huffpack.Compress(string(text))
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	var buf bytes.Buffer
	if err := archive.Write(&buf, pkg); err != nil {
		return nil, fmt.Errorf("write package: %w", err)
	}
	s.log.Infof("compressed %d bytes into %d packed bytes (%d codes)", len(text), len(pkg.Data), len(pkg.Table))
	return buf.Bytes(), nil
}

// DecompressArchive restores the original text from zip package bytes.
func (s *CodecService) DecompressArchive(zipData []byte) ([]byte, error) {
	pkg, err := archive.Read(zipData)
	if err != nil {
		return nil, err
	}
	text, err := huffpack.Decompress(pkg)
	if err != nil {
		return nil, err
	}
	s.log.Infof("decompressed %d packed bytes into %d bytes", len(pkg.Data), len(text))
	return []byte(text), nil
}

// Package config loads the server configuration from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// MaxUploadBytes caps the size of one uploaded file.
	MaxUploadBytes int64
}

const (
	defaultAddr      = ":8080"
	defaultMaxUpload = 16 << 20
)

func Load() Config {
	cfg := Config{
		Addr:           defaultAddr,
		MaxUploadBytes: defaultMaxUpload,
	}
	if v := os.Getenv("HUFFD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HUFFD_MAX_UPLOAD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	return cfg
}

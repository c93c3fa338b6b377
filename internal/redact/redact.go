package redact

import (
	"github.com/dshills/herald/internal/config"
)

const placeholder = "****"

// Credentials returns a copy of cfg with credential material masked. The
// input is not modified.
func Credentials(cfg config.Config) config.Config {
	if cfg.S3 == nil {
		return cfg
	}
	s3 := *cfg.S3
	s3.AccessKey = mask(s3.AccessKey)
	s3.SecretKey = mask(s3.SecretKey)
	cfg.S3 = &s3
	return cfg
}

// mask keeps the last four characters of values long enough that the tail
// reveals nothing, and hides shorter values entirely.
func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return placeholder
	}
	return placeholder + s[len(s)-4:]
}

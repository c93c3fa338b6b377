// Package config loads the herald configuration file and applies
// environment overrides.
//
// The file is JSON at $XDG_CONFIG_HOME/herald/config.json (or the
// OS-appropriate equivalent): a root active_provider key plus one section
// per provider (scp, s3). Overrides come from a declared table of
// environment variables, matched case-insensitively: SECTION__KEY for
// section fields (SCP__HOST, S3__BUCKET, ...) and ACTIVE_PROVIDER at the
// root. A section override applies only when that section is
// present in the file; the root override applies only when the root key is.
// Variables outside the table are ignored, and override application never
// fails the load.
//
// Use [Load] to obtain the effective [Config], [Save] and [SetField] for
// the config management commands, and the per-section Validate methods to
// check required fields before publishing.
package config

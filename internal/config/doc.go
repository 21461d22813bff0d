// Package config loads, normalizes, and validates gradecheck configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as GRADECHECK_ENCODING.
// Settings cover log routing, the transcript encoding override, output format
// and color, and extra GPA exclusions.
//
// Always obtain settings through this package so the CLI receives sanitized
// paths, canonical format names, and clear validation errors.
package config

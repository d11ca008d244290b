// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the target directory, the ordered category map, the
// large-file threshold, ignore names, and log/journal locations.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, lower-cased extensions, and clear validation
// errors. Category declaration order is preserved as an explicit list
// because classification resolves overlaps by first match.
package config

// Package config loads, normalizes, and validates triage configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: output and log directories, export format, run-history
// storage, and log routing.
//
// Classification policy (day limit, date threshold, status pairs) is absent
// here. The rules are fixed business policies owned by the classify package,
// not configuration.
package config

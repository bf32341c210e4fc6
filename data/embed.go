// Package data embeds default configuration and reference data files.
package data

import _ "embed"

// DefaultConfig is the lexsort configuration used when no file is given.
//
//go:embed lexsort.yaml
var DefaultConfig []byte

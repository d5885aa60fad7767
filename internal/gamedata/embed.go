// Package gamedata provides the embedded game tables and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON tables and the YAML tuning file from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS

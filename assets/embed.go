// Package assets embeds the bundled levels, tuning files and input scripts.
package assets

import "embed"

//go:embed all:levels all:tuning all:scripts
var FS embed.FS

const (
	LevelsDir     = "levels"
	DefaultTuning = "tuning/default.yaml"
	ScriptsDir    = "scripts"
)

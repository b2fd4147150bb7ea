package levels

import (
	"embed"
	"fmt"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded levels shipped with the binary.
func Builtin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}

	var levels []Level
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", entry.Name(), err)
		}
		lc, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: embedded %s: %w", entry.Name(), err)
		}
		levels = append(levels, Level{LevelConfig: lc})
	}
	return levels, nil
}

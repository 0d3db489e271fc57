package sim

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/doomerang-abilities/shared/leveldata"
)

// LevelsDir is where levels live inside an assets filesystem.
const LevelsDir = "levels"

// LoadLevel loads levels/<name>.tmx from fsys.
func LoadLevel(fsys fs.FS, name string) (*leveldata.Level, error) {
	level, err := leveldata.LoadLevel(fsys, path.Join(LevelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}
	return level, nil
}

// LevelNames lists the levels available in fsys.
func LevelNames(fsys fs.FS) ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(fsys, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}
	return names, nil
}

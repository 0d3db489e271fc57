package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files
const (
	SolidLayer   = "wg-tiles"
	SpawnGroup   = "PlayerSpawn"
	TargetsGroup = "Targets"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	heightPx := float64(levelMap.Height) * tileH

	data := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	// Solid tiles, merged into horizontal runs per row
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			start := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				if solid && start < 0 {
					start = x
				}
				if !solid && start >= 0 {
					data.Solids = append(data.Solids, Box{
						X: float64(start),
						Y: float64(levelMap.Height - y - 1),
						W: float64(x - start),
						H: 1,
					})
					start = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X / tileW,
					Y:     (heightPx - o.Y) / tileH,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case TargetsGroup:
			for _, o := range og.Objects {
				data.Targets = append(data.Targets, TargetSpawn{
					Name: o.Name,
					Box: Box{
						X: o.X / tileW,
						Y: (heightPx - o.Y - o.Height) / tileH,
						W: o.Width / tileW,
						H: o.Height / tileH,
					},
					MaxHealth: o.Properties.GetFloat("maxHealth"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

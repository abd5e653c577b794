package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
	"github.com/spidergame/spider/shared/geometry"
)

var (
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
	ErrBadBox        = errors.New("level box has no volume")
)

const spawnGroup = "spawns"

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (tests, tools).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Max: mgl64.Vec2{
			float64(levelMap.Width*levelMap.TileWidth) / PixelsPerUnit,
			float64(levelMap.Height*levelMap.TileHeight) / PixelsPerUnit,
		},
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if strings.EqualFold(og.Name, spawnGroup) {
			for _, o := range og.Objects {
				pos := mgl64.Vec3{
					o.X / PixelsPerUnit,
					o.Properties.GetFloat("elevation"),
					o.Y / PixelsPerUnit,
				}
				switch strings.ToLower(o.Name) {
				case "player":
					level.Player = Spawn{Position: pos, Yaw: o.Properties.GetFloat("yaw")}
					hasPlayer = true
				case "drone":
					level.Drone = DroneRoute{
						Start: pos,
						End: mgl64.Vec3{
							o.Properties.GetFloat("endX"),
							o.Properties.GetFloat("endY"),
							o.Properties.GetFloat("endZ"),
						},
						TimeToReach: o.Properties.GetFloat("timeToReach"),
					}
				}
			}
			continue
		}

		layer, ok := geometry.ParseLayer(og.Name)
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			elevation := o.Properties.GetFloat("elevation")
			height := o.Properties.GetFloat("height")
			box := geometry.Box{
				Name:  o.Name,
				Layer: layer,
				Min:   mgl64.Vec3{o.X / PixelsPerUnit, elevation, o.Y / PixelsPerUnit},
				Max: mgl64.Vec3{
					(o.X + o.Width) / PixelsPerUnit,
					elevation + height,
					(o.Y + o.Height) / PixelsPerUnit,
				},
			}
			if height <= 0 || o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("%s: object %q in %s: %w", tmxPath, o.Name, og.Name, ErrBadBox)
			}
			level.Boxes = append(level.Boxes, box)
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// TileKind classifies a floor tile for drawing. It comes from the "kind"
// property of the tileset tile.
type TileKind string

const (
	TileFloor    TileKind = "floor"
	TileFloorAlt TileKind = "floor_alt"
	TileCrack    TileKind = "crack"
	TileMoss     TileKind = "moss"
	TileBorder   TileKind = "border"
	TileTorch    TileKind = "torch"
)

// Tile is one non-empty cell of the floor layer, in world pixels.
type Tile struct {
	X, Y          float64
	Width, Height float64
	Kind          TileKind
}

// Hint is a text panel placed in the map's "Hints" object group.
type Hint struct {
	Name string
	Text string
}

type Level struct {
	Name       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int
	Tiles      []Tile
	Hints      []Hint
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader reading the levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS returns a loader reading levels from fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a Tiled map. The floor tiles are taken from the layer named
// "floor", or the first tile layer when there is none.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 || levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return Level{}, fmt.Errorf("level %s has no size", levelPath)
	}

	var name string
	if levelMap.Properties != nil {
		name = levelMap.Properties.GetString("name")
	}
	if name == "" {
		name = filepath.Base(levelPath)
	}
	level := Level{
		Name:       name,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Hints" {
			continue
		}
		for _, o := range og.Objects {
			if o.Properties == nil {
				continue
			}
			level.Hints = append(level.Hints, Hint{
				Name: o.Name,
				Text: o.Properties.GetString("text"),
			})
		}
	}

	layer := floorLayer(levelMap)
	if layer == nil {
		return level, nil
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tileIndex := y*levelMap.Width + x
			if tileIndex >= len(layer.Tiles) {
				break
			}
			tile := layer.Tiles[tileIndex]
			if tile.IsNil() {
				continue
			}

			kind := TileFloor
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile.Properties != nil {
				if k := tilesetTile.Properties.GetString("kind"); k != "" {
					kind = TileKind(k)
				}
			}

			level.Tiles = append(level.Tiles, Tile{
				X:      float64(x) * tileW,
				Y:      float64(y) * tileH,
				Width:  tileW,
				Height: tileH,
				Kind:   kind,
			})
		}
	}
	return level, nil
}

func floorLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == "floor" {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

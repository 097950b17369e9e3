package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelsDir is the directory under the config root holding level files.
const LevelsDir = "levels"

// levelIndex lists level files in play order.
const levelIndex = "index.yaml"

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidConfig = errors.New("invalid config")
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Levels   []*LevelConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the root the loader was created with.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json on top of DefaultPhysics.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := DefaultPhysics()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json on top of DefaultEntities.
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	cfg := DefaultEntities()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads one level file. The format follows the extension:
// .yaml/.yml or .json. Tiled platforms that name a tmx map get their grid from it.
func (l *Loader) LoadLevel(file string) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", file, err)
	}

	var cfg LevelConfig
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("level %s: %w: unsupported extension", file, ErrInvalidConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", file, err)
	}
	cfg.Source = file

	for i := range cfg.Platforms {
		p := &cfg.Platforms[i]
		if p.TMX == "" || len(p.Tiles) > 0 {
			continue
		}
		grid, err := l.LoadTMX(path.Join(path.Dir(file), p.TMX))
		if err != nil {
			return nil, fmt.Errorf("level %s platform %d: %w", file, i, err)
		}
		p.Tiles = grid.Tiles
		if p.TileWidth == 0 {
			p.TileWidth = grid.TileWidth
		}
		if p.TileHeight == 0 {
			p.TileHeight = grid.TileHeight
		}
	}

	return &cfg, nil
}

// LevelFiles returns level files in play order: the order of levels/index.yaml
// when present, otherwise lexical order of the level files.
func (l *Loader) LevelFiles() ([]string, error) {
	indexPath := path.Join(LevelsDir, levelIndex)
	if data, err := fs.ReadFile(l.fsys, indexPath); err == nil {
		var index struct {
			Levels []string `yaml:"levels"`
		}
		if err := yaml.Unmarshal(data, &index); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", indexPath, err)
		}
		files := make([]string, 0, len(index.Levels))
		for _, name := range index.Levels {
			files = append(files, path.Join(LevelsDir, name))
		}
		return files, nil
	}

	entries, err := fs.ReadDir(l.fsys, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LevelsDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		files = append(files, path.Join(LevelsDir, e.Name()))
	}
	return files, nil
}

// IsLevelFile reports whether name looks like a level file.
func IsLevelFile(name string) bool {
	if path.Base(name) == levelIndex {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadLevels loads every level in play order.
func (l *Loader) LoadLevels() ([]*LevelConfig, error) {
	files, err := l.LevelFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no levels in %s", ErrInvalidConfig, LevelsDir)
	}

	levels := make([]*LevelConfig, 0, len(files))
	for _, f := range files {
		lvl, err := l.LoadLevel(f)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// LoadAll loads physics, entities and levels
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
		Levels:   levels,
	}, nil
}

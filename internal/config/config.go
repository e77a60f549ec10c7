// Package config loads tlvstore's ambient defaults — the backing file
// path, its preferred size, and the compat flag — from layered JSONC
// config files, the way the teacher layers its own config. Nothing here
// is part of the on-disk TLV contract; it only supplies CLI defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds tlvstore's ambient defaults.
type Config struct {
	StoreFile string `json:"store_file,omitempty"`
	StoreSize int    `json:"store_size,omitempty"`
	Compat    bool   `json:"compat,omitempty"`

	// Sources tracks which files contributed, for diagnostics.
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string
	Project string
}

// FileName is the default project config file name.
const FileName = ".tlvstore.json"

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir    string            // defaults to os.Getwd() if empty
	ConfigPath string            // explicit config file path, if any; replaces the project file
	Env        map[string]string // environment, for XDG_CONFIG_HOME/HOME lookup
}

// Load resolves Config with precedence (highest wins): built-in zero
// value, global user config, project config (or an explicit ConfigPath),
// per spec §6's compile-time-default fallback plus the ambient JSONC
// layering the teacher uses for its own settings.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("config: getwd: %w", err)
		}
	}

	cfg := Config{}

	globalCfg, globalPath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	return cfg, nil
}

func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "tlvstore", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tlvstore", "config.json")
	}

	return ""
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadProject(workDir, explicitPath string) (Config, string, error) {
	path := explicitPath
	mustExist := path != ""

	if path == "" {
		path = filepath.Join(workDir, FileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if !mustExist {
				return Config{}, false, nil
			}

			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}

		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func merge(base, overlay Config) Config {
	if overlay.StoreFile != "" {
		base.StoreFile = overlay.StoreFile
	}

	if overlay.StoreSize != 0 {
		base.StoreSize = overlay.StoreSize
	}

	if overlay.Compat {
		base.Compat = true
	}

	return base
}

// Package config loads re2ab settings from a TOML file.
//
// The file is optional. Lookup order is the --config flag, then the
// RE2AB_CONFIG environment variable, then .re2ab.toml in the working
// directory. Fields missing from the file keep their defaults:
//
//	files        = ["rust-project.json"]
//	keys         = ["root_module", "path"]
//	indent       = 4
//	ensure_ascii = true
//	atomic       = true
//	strict       = true
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/re2ab/pkg/errors"
)

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = ".re2ab.toml"

	// EnvVar names the environment variable that may point at a config file.
	EnvVar = "RE2AB_CONFIG"

	// DefaultTarget is the project file rewritten when no file is given.
	DefaultTarget = "rust-project.json"
)

// DefaultKeys are the member names whose values are treated as paths.
var DefaultKeys = []string{"root_module", "path"}

// Config holds every setting that can come from the config file.
type Config struct {
	Files       []string `toml:"files"`
	Keys        []string `toml:"keys"`
	Indent      int      `toml:"indent"`
	EnsureASCII bool     `toml:"ensure_ascii"`
	Atomic      bool     `toml:"atomic"`
	Strict      bool     `toml:"strict"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Files:       []string{DefaultTarget},
		Keys:        append([]string(nil), DefaultKeys...),
		Indent:      4,
		EnsureASCII: true,
		Atomic:      true,
		Strict:      true,
	}
}

// Locate returns the config file to load. An explicit path always wins and
// must exist; otherwise the environment variable and then DefaultFile are
// tried. found is false when no config file applies.
func Locate(explicit string) (path string, found bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env, true
	}
	if info, err := os.Stat(DefaultFile); err == nil && !info.IsDir() {
		return DefaultFile, true
	}
	return "", false
}

// Load decodes the file at path on top of [Default] and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapFS(err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown setting %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if len(c.Keys) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "keys cannot be empty")
	}
	for _, k := range c.Keys {
		if err := errors.ValidateKey(k); err != nil {
			return err
		}
	}
	for _, f := range c.Files {
		if err := errors.ValidatePath(f); err != nil {
			return err
		}
	}
	if c.Indent < -1 || c.Indent > 16 {
		return errors.New(errors.ErrCodeInvalidConfig, "indent must be between -1 and 16, got %d", c.Indent)
	}
	return nil
}

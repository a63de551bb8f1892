// Package emitconfig holds the handful of knobs a caller of this core
// legitimately sets before building a class (SPEC_FULL §3): the
// default classfile version, a constant-pool case-sensitive-interning
// flag, and a bytecode-assembler strict-mode flag. Only the version is
// read (by class.NewFromConfig); no package in this module reads the two
// flags, so they do not change how interning or assembly behaves.
// Grounded directly on
// lookbusy1344-arm_emulator/config/config.go's
// Config/DefaultConfig/Load/LoadFrom shape, trimmed to this library's
// own tunables (no execution/debugger/display/trace/statistics
// sections — those belong to a driver program this core does not
// have).
package emitconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the caller-facing set of emitter tunables.
type Config struct {
	Classfile struct {
		DefaultMajorVersion uint16 `toml:"default_major_version"`
		DefaultMinorVersion uint16 `toml:"default_minor_version"`
	} `toml:"classfile"`

	ConstantPool struct {
		CaseSensitiveInterning bool `toml:"case_sensitive_interning"`
	} `toml:"constant_pool"`

	Bytecode struct {
		Strict bool `toml:"strict"`
	} `toml:"bytecode"`
}

// DefaultConfig returns a Config matching javac's own defaults: major
// version 61 (Java 17), case-sensitive interning (the only behavior the
// JVMS actually specifies for Utf8 comparison), and strict bytecode
// assembly.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Classfile.DefaultMajorVersion = 61
	cfg.Classfile.DefaultMinorVersion = 0
	cfg.ConstantPool.CaseSensitiveInterning = true
	cfg.Bytecode.Strict = true
	return cfg
}

// Load reads configuration from "emitconfig.toml" in the current
// directory, falling back to DefaultConfig if that file is absent.
func Load() (*Config, error) {
	return LoadFrom("emitconfig.toml")
}

// LoadFrom reads configuration from path, falling back to
// DefaultConfig if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("emitconfig: failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveTo writes cfg to path in TOML form, creating its parent
// directory if needed.
func (c *Config) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("emitconfig: failed to create config directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- caller-supplied config path
	if err != nil {
		return fmt.Errorf("emitconfig: failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("emitconfig: failed to encode config: %w", err)
	}
	return nil
}

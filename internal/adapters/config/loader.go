// Package config provides the configuration loader for vscfg.
package config

import (
	"bytes"
	"errors"
	"io"

	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration file at path and applies it over domain.DefaultConfig.
// With an empty path, .vscfg.yaml in the working directory is used if it exists.
// An explicitly named file must exist.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		exists, err := l.FS.Exists(domain.ConfigFileName)
		if err != nil {
			return cfg, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		if !exists {
			return cfg, nil
		}
		path = domain.ConfigFileName
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return cfg, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	file, err := decode(data)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(&cfg, file)
	l.Logger.Info("loaded configuration from " + path)

	return cfg, nil
}

// decode parses a config file, rejecting unknown keys. An empty document is valid.
func decode(data []byte) (Configfile, error) {
	var file Configfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Configfile{}, err
	}

	return file, nil
}

func apply(cfg *domain.Config, file Configfile) {
	if t := file.Task; t != nil {
		if t.Args != nil {
			cfg.Task.Args = t.Args
		}
		if t.ProblemMatcher != nil {
			cfg.Task.ProblemMatcher = t.ProblemMatcher
		}
		if t.Default != nil {
			cfg.Task.IsDefault = *t.Default
		}
	}

	if p := file.Properties; p != nil && p.IntelliSenseMode != "" {
		cfg.Properties.IntelliSenseMode = p.IntelliSenseMode
	}
}

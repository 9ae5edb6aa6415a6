package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPath is the configuration file looked up in the working directory
	DefaultPath = "labelflair.toml"

	// EnvConfigPath overrides DefaultPath when no --config flag is given
	EnvConfigPath = "LABELFLAIR_CONFIG"

	// CurrentVersion is the only configuration version understood today
	CurrentVersion = "1"
)

// Config represents a parsed labelflair configuration
type Config struct {
	Version string
	Labels  []StandaloneLabel // [[label]] entries, in declaration order
	Groups  []Group           // [[group]] entries, in declaration order
}

// Group bundles a prefix and color spec with an ordered list of label entries
type Group struct {
	Prefix string
	Colors ColorSpec
	Labels []LabelEntry

	// Sort orders entries by name before colors are assigned
	Sort bool
}

// StandaloneLabel is a label defined outside any group, with its own color
type StandaloneLabel struct {
	Name        string
	Color       string
	Description *string
	Aliases     []string
}

// fileConfig mirrors the TOML document layout
type fileConfig struct {
	Version string      `toml:"version"`
	Labels  []fileLabel `toml:"label"`
	Groups  []fileGroup `toml:"group"`
}

type fileLabel struct {
	Name        string   `toml:"name"`
	Color       string   `toml:"color"`
	Description *string  `toml:"description"`
	Aliases     []string `toml:"aliases"`
}

type fileGroup struct {
	Prefix string       `toml:"prefix"`
	Colors colorsField  `toml:"colors"`
	Labels entriesField `toml:"labels"`
	Sort   bool         `toml:"sort"`
}

// ResolvePath picks the configuration path: explicit flag value first,
// then LABELFLAIR_CONFIG, then DefaultPath
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads and parses the configuration file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document into a Config
func Parse(data string) (*Config, error) {
	var raw fileConfig
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if unknown := undecodedKeys(md); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrMalformed, strings.Join(unknown, ", "))
	}

	for i, g := range raw.Groups {
		if g.Colors.spec == nil {
			return nil, fmt.Errorf("%w: group %d: %w: colors is required", ErrMalformed, i, ErrInvalidColorSpec)
		}
	}

	cfg := raw.toConfig()
	cfg.applyDefaults()
	return cfg, nil
}

// undecodedKeys lists keys the decoder did not map onto a field.
// Keys below group.colors and group.labels are validated by their own unmarshalers.
func undecodedKeys(md toml.MetaData) []string {
	var keys []string
	for _, key := range md.Undecoded() {
		if len(key) >= 2 && key[0] == "group" && (key[1] == "colors" || key[1] == "labels") {
			continue
		}
		keys = append(keys, key.String())
	}
	return keys
}

func (f *fileConfig) toConfig() *Config {
	cfg := &Config{
		Version: f.Version,
		Labels:  make([]StandaloneLabel, 0, len(f.Labels)),
		Groups:  make([]Group, 0, len(f.Groups)),
	}

	for _, l := range f.Labels {
		cfg.Labels = append(cfg.Labels, StandaloneLabel{
			Name:        l.Name,
			Color:       l.Color,
			Description: l.Description,
			Aliases:     l.Aliases,
		})
	}

	for _, g := range f.Groups {
		cfg.Groups = append(cfg.Groups, Group{
			Prefix: g.Prefix,
			Colors: g.Colors.spec,
			Labels: []LabelEntry(g.Labels),
			Sort:   g.Sort,
		})
	}

	return cfg
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	// Configurations written before versioning have no version key
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	for i := range c.Labels {
		if c.Labels[i].Aliases == nil {
			c.Labels[i].Aliases = []string{}
		}
	}
}

// Package config loads tuning profiles and host settings from YAML.
//
// Two profiles ship embedded in the binary. A user file given with -config
// is layered on top of the chosen profile, so it only needs the keys it
// changes.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// DefaultProfile is used when neither the flag nor the file names one.
const DefaultProfile = "classic"

// Host holds settings for the desktop host, not the simulation.
type Host struct {
	Scale    float64 `yaml:"scale"`
	Volume   float64 `yaml:"volume"`
	Mute     bool    `yaml:"mute"`
	Seed     int64   `yaml:"seed"` // 0 picks a seed from the clock
	LogLevel string  `yaml:"log_level"`
}

// Config is one resolved configuration file.
type Config struct {
	Profile string     `yaml:"profile"`
	Host    Host       `yaml:"host"`
	Tuning  sim.Tuning `yaml:"tuning"`
}

// Profiles lists the embedded profile names, sorted.
func Profiles() []string {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Profile returns an embedded profile. Every profile other than classic is
// layered over classic.
func Profile(name string) (Config, error) {
	var cfg Config
	if err := decodeEmbedded(&cfg, DefaultProfile); err != nil {
		return Config{}, err
	}
	if name != DefaultProfile {
		if err := decodeEmbedded(&cfg, name); err != nil {
			return Config{}, err
		}
	}
	cfg.Profile = name
	return cfg, nil
}

func decodeEmbedded(cfg *Config, name string) error {
	b, err := profileFS.ReadFile("profiles/" + name + ".yaml")
	if err != nil {
		return fmt.Errorf("unknown profile %q (have %s)", name, strings.Join(Profiles(), ", "))
	}
	if err := decode(bytes.NewReader(b), cfg); err != nil {
		return fmt.Errorf("profile %s: %w", name, err)
	}
	return nil
}

// decode overlays the YAML document in r onto cfg. Unknown keys are errors.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load resolves the configuration. profile wins over the file's own
// profile key; path may be empty. The result is validated.
func Load(profile, path string) (Config, error) {
	var user []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		user = b
	}

	if profile == "" {
		profile = profileKey(user)
	}
	if profile == "" {
		profile = DefaultProfile
	}

	cfg, err := Profile(profile)
	if err != nil {
		return Config{}, err
	}
	if user != nil {
		if err := decode(bytes.NewReader(user), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Profile = profile
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// profileKey peeks at the top-level profile key of a user file.
func profileKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var head struct {
		Profile string `yaml:"profile"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return ""
	}
	return head.Profile
}

// Marshal renders cfg back to YAML, for -dump-config.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

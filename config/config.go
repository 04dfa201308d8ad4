// Package config loads the seatplan run configuration from YAML.
//
// A file is decoded over Default(), so it only needs the keys it changes.
// Unknown keys are rejected to catch typos early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Input         string       `yaml:"input"`          // roster file: .csv .txt .xlsx .xlsm .db .sqlite .sqlite3
	Table         string       `yaml:"table"`          // sqlite table, default "roster"
	NormalizeTags bool         `yaml:"normalize_tags"` // map free-form values to male/female/unknown
	Grid          GridConfig   `yaml:"grid"`
	Policy        PolicyConfig `yaml:"policy"`
	Tags          []string     `yaml:"tags,omitempty"` // optional explicit group order, exactly two values
	Seed          int64        `yaml:"seed"` // 0 = non-deterministic
	Output        OutputConfig `yaml:"output"`
	Labels        LabelsConfig `yaml:"labels"`
}

// GridConfig describes the room.
type GridConfig struct {
	Rows        int   `yaml:"rows"`
	Cols        int   `yaml:"cols"`
	Corridors   []int `yaml:"corridors"` // 1-based column indices
	PodiumLeft  bool  `yaml:"podium_left"`
	PodiumRight bool  `yaml:"podium_right"`
}

// PolicyConfig selects the placement algorithm.
// corridor_alternating wins over gender_clustered.
type PolicyConfig struct {
	GenderClustered     bool `yaml:"gender_clustered"`
	RunLength           int  `yaml:"run_length"`
	StrictRuns          bool `yaml:"strict_runs"` // clustered runs always alternate group
	CorridorAlternating bool `yaml:"corridor_alternating"`
}

// OutputConfig controls where and how results are exported.
type OutputConfig struct {
	Dir         string   `yaml:"dir"`
	Basename    string   `yaml:"basename"`     // names sheet file stem
	TagBasename string   `yaml:"tag_basename"` // tags sheet file stem
	Formats     []string `yaml:"formats"`      // excel, csv, png
	FontPath    string   `yaml:"font_path"`    // TrueType font for png; empty = auto
}

// LabelsConfig holds the placeholder cell texts.
type LabelsConfig struct {
	Podium   string `yaml:"podium"`
	Corridor string `yaml:"corridor"`
	Empty    string `yaml:"empty"`
}

// Default returns the classic classroom setup: 7 rows of 11 columns with
// corridors at columns 4 and 8, a right podium seat and runs of three.
func Default() *Config {
	return &Config{
		Input: "name_list.xlsx",
		Table: "roster",
		Grid: GridConfig{
			Rows:        7,
			Cols:        11,
			Corridors:   []int{4, 8},
			PodiumRight: true,
		},
		Policy: PolicyConfig{
			GenderClustered: true,
			RunLength:       3,
		},
		Output: OutputConfig{
			Dir:         ".",
			Basename:    "arrangement_result",
			TagBasename: "arrangement_sex_result",
			Formats:     []string{"excel", "csv", "png"},
		},
		Labels: LabelsConfig{
			Podium:   "Podium",
			Corridor: "Corridor",
		},
	}
}

// Load decodes the YAML file at path over Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: failed to read config file: %w", err)
	}
	if err = Decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads one YAML document from r into cfg, keeping fields the
// document does not mention. An empty document is not an error.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

// Marshal encodes cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	return buf.Bytes(), nil
}

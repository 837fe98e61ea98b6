// Package config provides configuration loading and management for gpacalc.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wkdkavishka/gpa-calculator/gpa"
	"github.com/wkdkavishka/gpa-calculator/report"
	"github.com/wkdkavishka/gpa-calculator/transcript"
)

// Config represents the complete gpacalc configuration
type Config struct {
	Scale  map[string]float64 `yaml:"scale"`
	Policy PolicyConfig       `yaml:"policy"`
	Output OutputConfig       `yaml:"output"`
}

// PolicyConfig configures the retake classification buckets
type PolicyConfig struct {
	// MustRetake lists grades requiring mandatory repetition
	MustRetake []string `yaml:"must_retake"`
	// Recommended lists passing grades worth retaking for GPA improvement
	Recommended []string `yaml:"recommended"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	// Format selects the report format: text or json
	Format string `yaml:"format"`
	// Precision is the number of decimal places for GPA values.
	// A pointer so that Merge can tell an explicit 0 from an unset field.
	Precision *int `yaml:"precision"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	precision := report.DefaultPrecision
	return &Config{
		Scale: nil, // standard 4.0 table
		Policy: PolicyConfig{
			MustRetake:  []string{"F", "E", "WH"},
			Recommended: []string{"D", "D+"},
		},
		Output: OutputConfig{
			Format:    string(report.FormatText),
			Precision: &precision,
		},
	}
}

// OutputPrecision returns the configured precision, or the display
// default when no layer set one.
func (c *Config) OutputPrecision() int {
	if c.Output.Precision == nil {
		return report.DefaultPrecision
	}
	return *c.Output.Precision
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.PointTable(); err != nil {
		return err
	}
	if _, err := c.RetakePolicy(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Output.Precision != nil && (*c.Output.Precision < 0 || *c.Output.Precision > 6) {
		return fmt.Errorf("output.precision must be between 0 and 6")
	}
	return nil
}

// PointTable materializes the grade-point table: the standard 4.0 table
// with any scale overrides applied on top.
func (c *Config) PointTable() (gpa.PointTable, error) {
	table := gpa.DefaultTable()
	for token, points := range c.Scale {
		grade, ok := transcript.ParseGrade(token)
		if !ok {
			return nil, fmt.Errorf("scale: unknown grade %q", token)
		}
		table[grade] = points
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	return table, nil
}

// RetakePolicy materializes the retake policy from the configured buckets.
func (c *Config) RetakePolicy() (gpa.Policy, error) {
	policy := gpa.Policy{}
	for _, token := range c.Policy.MustRetake {
		grade, ok := transcript.ParseGrade(token)
		if !ok {
			return gpa.Policy{}, fmt.Errorf("policy.must_retake: unknown grade %q", token)
		}
		policy.MustRetake = append(policy.MustRetake, grade)
	}
	for _, token := range c.Policy.Recommended {
		grade, ok := transcript.ParseGrade(token)
		if !ok {
			return gpa.Policy{}, fmt.Errorf("policy.recommended: unknown grade %q", token)
		}
		policy.Recommended = append(policy.Recommended, grade)
	}
	if err := policy.Validate(); err != nil {
		return gpa.Policy{}, fmt.Errorf("policy: %w", err)
	}
	return policy, nil
}

// LoadFromFile loads configuration from a YAML file. Fields the file
// omits stay at their zero values so that Merge only applies what the
// file actually set; defaults belong to the loader's base layer only.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Scale
	if len(other.Scale) > 0 {
		if c.Scale == nil {
			c.Scale = make(map[string]float64, len(other.Scale))
		}
		for g, p := range other.Scale {
			c.Scale[g] = p
		}
	}

	// Policy
	if len(other.Policy.MustRetake) > 0 {
		c.Policy.MustRetake = other.Policy.MustRetake
	}
	if len(other.Policy.Recommended) > 0 {
		c.Policy.Recommended = other.Policy.Recommended
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Precision != nil {
		c.Output.Precision = other.Output.Precision
	}
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a curve the way an editor user enters it: degree, count
// and knots as text, followed by edits to individual control points.
type Config struct {
	Degree string        `yaml:"degree"`
	Count  string        `yaml:"count"`
	Knots  string        `yaml:"knots,omitempty"`
	Points []PointConfig `yaml:"points,omitempty"`
	Steps  int           `yaml:"steps,omitempty"`
}

// PointConfig overrides one control point. A missing weight keeps the
// point's current weight.
type PointConfig struct {
	Index  int      `yaml:"index"`
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Weight *float64 `yaml:"weight,omitempty"`
}

func parseConfig(d []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func loadConfig(name string) (*Config, error) {
	d, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parseConfig(d)
}

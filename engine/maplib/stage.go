package maplib

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/1siamBot/pang/engine/core"
	"gopkg.in/yaml.v3"
)

//go:embed stages/stage1.yaml
var defaultStage []byte

// RectSpec places a static block or ladder
type RectSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color"`
}

// EnemySpec places a ball at the start of the stage
type EnemySpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Kind    string  `yaml:"kind"`
	Heading int     `yaml:"heading"`
}

// PlayerSpec is the player start. A nil Y puts the player on the floor.
type PlayerSpec struct {
	X float64  `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Stage is the layout of one level
type Stage struct {
	Name    string      `yaml:"name"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Walls   bool        `yaml:"walls"`
	Blocks  []RectSpec  `yaml:"blocks"`
	Ladders []RectSpec  `yaml:"ladders"`
	Enemies []EnemySpec `yaml:"enemies"`
	Player  PlayerSpec  `yaml:"player"`
}

// KindValidator reports whether an enemy kind name is known. It is
// supplied by the package that defines the enemy kinds.
type KindValidator func(kind string) error

// DefaultStage returns the built-in first stage
func DefaultStage() (*Stage, error) {
	return Parse(defaultStage)
}

// LoadStage reads a stage from a YAML file
func LoadStage(path string) (*Stage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", path, err)
	}
	st, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}
	return st, nil
}

// Parse decodes a stage from YAML
func Parse(raw []byte) (*Stage, error) {
	var st Stage
	if err := yaml.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("parse stage: %w", err)
	}
	return &st, nil
}

// Validate checks sizes, colors and headings. Enemy kinds are checked with
// kinds when it is not nil.
func (s *Stage) Validate(kinds KindValidator) error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("stage size %dx%d must be positive", s.Width, s.Height))
	}
	check := func(what string, i int, r RectSpec) {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("%s %d: size %vx%v must be positive", what, i, r.W, r.H))
		}
		if _, ok := core.Palette[r.Color]; !ok {
			errs = append(errs, fmt.Errorf("%s %d: unknown color %q", what, i, r.Color))
		}
	}
	for i, b := range s.Blocks {
		check("block", i, b)
	}
	for i, l := range s.Ladders {
		check("ladder", i, l)
	}
	for i, e := range s.Enemies {
		if e.Heading != 1 && e.Heading != -1 {
			errs = append(errs, fmt.Errorf("enemy %d: heading %d must be 1 or -1", i, e.Heading))
		}
		if kinds != nil {
			if err := kinds(e.Kind); err != nil {
				errs = append(errs, fmt.Errorf("enemy %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

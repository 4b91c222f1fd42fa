package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// TuningFile is the YAML overlay applied on top of the init() defaults.
// Every field is optional; absent keys keep their current value.
type TuningFile struct {
	Window     *WindowTuning     `yaml:"window"`
	Background *BackgroundTuning `yaml:"background"`
	Player     *PlayerTuning     `yaml:"player"`
	Platforms  *PlatformTuning   `yaml:"platforms"`
	UI         *UITuning         `yaml:"ui"`
}

type WindowTuning struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`
}

type BackgroundTuning struct {
	Color *YAMLColor `yaml:"color"`
}

type PlayerTuning struct {
	JumpSpeed    *float64   `yaml:"jump_speed"`
	Acceleration *float64   `yaml:"acceleration"`
	MaxSpeed     *float64   `yaml:"max_speed"`
	Friction     *float64   `yaml:"friction"`
	Gravity      *float64   `yaml:"gravity"`
	MaxFallSpeed *float64   `yaml:"max_fall_speed"`
	FallLimit    *float64   `yaml:"fall_limit"`
	Color        *YAMLColor `yaml:"color"`
}

type PlatformTuning struct {
	Width         *float64   `yaml:"width"`
	MinGap        *float64   `yaml:"min_gap"`
	MaxGap        *float64   `yaml:"max_gap"`
	DriftChance   *float64   `yaml:"drift_chance"`
	DriftDistance *float64   `yaml:"drift_distance"`
	DriftSeconds  *float32   `yaml:"drift_seconds"`
	Color         *YAMLColor `yaml:"color"`
	DriftColor    *YAMLColor `yaml:"drift_color"`
}

type UITuning struct {
	ButtonDefault *YAMLColor `yaml:"button_default"`
	ButtonHover   *YAMLColor `yaml:"button_hover"`
	ButtonPressed *YAMLColor `yaml:"button_pressed"`
}

// ErrInvalidTuning is returned when a tuning file parses but holds values
// the game cannot run with.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// ApplyDefaultTuning applies the embedded tuning.yaml.
func ApplyDefaultTuning() error {
	return ApplyTuning(defaultTuning)
}

// LoadTuning reads a tuning file from disk and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: apply %s: %w", path, err)
	}
	return nil
}

// ApplyTuning parses data and overlays it on the global configuration.
// Nothing is applied when the file is invalid.
func ApplyTuning(data []byte) error {
	var t TuningFile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}

	if w := t.Window; w != nil {
		setInt(&C.Width, w.Width)
		setInt(&C.Height, w.Height)
		if w.Title != nil {
			C.Title = *w.Title
		}
	}
	if b := t.Background; b != nil {
		setColor(&Background.Color, b.Color)
	}
	if p := t.Player; p != nil {
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
		setFloat(&Player.Acceleration, p.Acceleration)
		setFloat(&Player.MaxSpeed, p.MaxSpeed)
		setFloat(&Player.Friction, p.Friction)
		setFloat(&Player.Gravity, p.Gravity)
		setFloat(&Player.MaxFallSpeed, p.MaxFallSpeed)
		setFloat(&Player.FallLimit, p.FallLimit)
		setColor(&Player.Color, p.Color)
	}
	if p := t.Platforms; p != nil {
		setFloat(&Platforms.Width, p.Width)
		setFloat(&Platforms.MinGap, p.MinGap)
		setFloat(&Platforms.MaxGap, p.MaxGap)
		setFloat(&Platforms.DriftChance, p.DriftChance)
		setFloat(&Platforms.DriftDistance, p.DriftDistance)
		if p.DriftSeconds != nil {
			Platforms.DriftSeconds = *p.DriftSeconds
		}
		setColor(&Platforms.Color, p.Color)
		setColor(&Platforms.DriftColor, p.DriftColor)
	}
	if u := t.UI; u != nil {
		setColor(&UI.ButtonDefault, u.ButtonDefault)
		setColor(&UI.ButtonHover, u.ButtonHover)
		setColor(&UI.ButtonPressed, u.ButtonPressed)
	}
	return nil
}

func (t *TuningFile) validate() error {
	if w := t.Window; w != nil {
		if (w.Width != nil && *w.Width <= 0) || (w.Height != nil && *w.Height <= 0) {
			return fmt.Errorf("%w: window size must be positive", ErrInvalidTuning)
		}
	}
	if p := t.Player; p != nil {
		if p.Gravity != nil && *p.Gravity >= 0 {
			return fmt.Errorf("%w: gravity must be negative (world is y-up)", ErrInvalidTuning)
		}
		if p.FallLimit != nil && *p.FallLimit <= 0 {
			return fmt.Errorf("%w: fall_limit must be positive", ErrInvalidTuning)
		}
	}
	if p := t.Platforms; p != nil {
		minGap, maxGap := Platforms.MinGap, Platforms.MaxGap
		if p.MinGap != nil {
			minGap = *p.MinGap
		}
		if p.MaxGap != nil {
			maxGap = *p.MaxGap
		}
		if minGap <= 0 || maxGap < minGap {
			return fmt.Errorf("%w: platform gaps must satisfy 0 < min_gap <= max_gap", ErrInvalidTuning)
		}
		if p.DriftChance != nil && (*p.DriftChance < 0 || *p.DriftChance > 1) {
			return fmt.Errorf("%w: drift_chance must be within [0, 1]", ErrInvalidTuning)
		}
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *color.RGBA, v *YAMLColor) {
	if v != nil {
		*dst = v.RGBA
	}
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = v
	}

	c.RGBA = color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

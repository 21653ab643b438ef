package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is the selectable difficulty level of a session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyNightmare
)

// difficultyInfo is one row of the static difficulty table.
type difficultyInfo struct {
	name       string
	title      string
	throatGap  float64
	background string
}

var difficultyTable = map[Difficulty]difficultyInfo{
	DifficultyEasy:      {name: "easy", title: "Easy", throatGap: 380, background: "day"},
	DifficultyMedium:    {name: "medium", title: "Medium", throatGap: 340, background: "day"},
	DifficultyHard:      {name: "hard", title: "Hard", throatGap: 320, background: "night"},
	DifficultyNightmare: {name: "nightmare", title: "Nightmare", throatGap: 315, background: "impossible"},
}

// Difficulties returns all levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyNightmare}
}

// info returns the table row, falling back to Medium for unknown values.
func (d Difficulty) info() difficultyInfo {
	if row, ok := difficultyTable[d]; ok {
		return row
	}
	return difficultyTable[DifficultyMedium]
}

// String returns the lower-case identifier ("easy", "hard", ...).
func (d Difficulty) String() string {
	return d.info().name
}

// Title returns the display name.
func (d Difficulty) Title() string {
	return d.info().title
}

// ThroatGap returns the half distance between the two pipes of an obstacle.
func (d Difficulty) ThroatGap() float64 {
	return d.info().throatGap
}

// Background returns the asset key of the backdrop for this level.
func (d Difficulty) Background() string {
	return d.info().background
}

// Next returns the next harder level, wrapping to Easy.
func (d Difficulty) Next() Difficulty {
	if d < DifficultyEasy || d >= DifficultyNightmare {
		return DifficultyEasy
	}
	return d + 1
}

// Prev returns the next easier level, wrapping to Nightmare.
func (d Difficulty) Prev() Difficulty {
	if d <= DifficultyEasy || d > DifficultyNightmare {
		return DifficultyNightmare
	}
	return d - 1
}

// ParseDifficulty parses a difficulty name, case-insensitively.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "normal" {
		return DifficultyMedium, nil
	}
	for _, d := range Difficulties() {
		if d.String() == name {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("config: unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler (used for JSON snapshots).
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML accepts a difficulty name scalar.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: line %d: difficulty must be a scalar", value.Line)
	}
	parsed, err := ParseDifficulty(value.Value)
	if err != nil {
		return fmt.Errorf("config: line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML writes the difficulty as its name.
func (d Difficulty) MarshalYAML() (any, error) {
	return d.String(), nil
}

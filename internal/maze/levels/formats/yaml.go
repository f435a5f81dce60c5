// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID              int            `yaml:"id"`
	Name            string         `yaml:"name"`
	Difficulty      string         `yaml:"difficulty,omitempty"`
	Description     string         `yaml:"description,omitempty"`
	GridSize        int            `yaml:"grid_size,omitempty"`
	MinMoves        int            `yaml:"min_moves"`
	Walls           []YAMLCell     `yaml:"walls"`
	Emitters        []YAMLEmitter  `yaml:"emitters"`
	Targets         []YAMLTarget   `yaml:"targets"`
	AvailablePieces map[string]int `yaml:"available_pieces,omitempty"`
}

// YAMLCell is a bare grid position.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLEmitter represents an emitter in YAML format.
type YAMLEmitter struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"`
	Color     string `yaml:"color,omitempty"`  // Defaults to white
	Active    *bool  `yaml:"active,omitempty"` // Defaults to true
}

// YAMLTarget represents a target in YAML format.
type YAMLTarget struct {
	X             int    `yaml:"x"`
	Y             int    `yaml:"y"`
	RequiredColor string `yaml:"required_color,omitempty"` // Defaults to white
}

// ParseYAML parses a YAML level file into a level definition.
// Unknown direction or colour names are errors. Semantic checks such as
// bounds are left to the caller.
func ParseYAML(data []byte) (core.LevelDefinition, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.LevelDefinition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.Definition()
}

// Definition converts the YAML structure into a level definition.
func (yl *YAMLLevel) Definition() (core.LevelDefinition, error) {
	def := core.LevelDefinition{
		ID:              yl.ID,
		Name:            yl.Name,
		Difficulty:      yl.Difficulty,
		Description:     yl.Description,
		GridSize:        yl.GridSize,
		MinMoves:        yl.MinMoves,
		AvailablePieces: make(map[string]int, len(yl.AvailablePieces)),
	}

	for _, w := range yl.Walls {
		def.Walls = append(def.Walls, core.C(w.X, w.Y))
	}

	for i, e := range yl.Emitters {
		dir, ok := core.ParseDirection(e.Direction)
		if !ok {
			return core.LevelDefinition{}, fmt.Errorf("emitter %d: unknown direction %q", i, e.Direction)
		}
		color, err := parseColor(e.Color)
		if err != nil {
			return core.LevelDefinition{}, fmt.Errorf("emitter %d: %w", i, err)
		}
		def.Emitters = append(def.Emitters, core.Emitter{
			Pos:       core.C(e.X, e.Y),
			Direction: dir,
			Color:     color,
			Disabled:  e.Active != nil && !*e.Active,
		})
	}

	for i, t := range yl.Targets {
		color, err := parseColor(t.RequiredColor)
		if err != nil {
			return core.LevelDefinition{}, fmt.Errorf("target %d: %w", i, err)
		}
		def.Targets = append(def.Targets, core.Target{Pos: core.C(t.X, t.Y), RequiredColor: color})
	}

	for name, count := range yl.AvailablePieces {
		def.AvailablePieces[name] = count
	}

	return def, nil
}

func parseColor(s string) (core.BeamColor, error) {
	if s == "" {
		return core.White, nil
	}
	c, ok := core.ParseBeamColor(s)
	if !ok {
		return core.White, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// FromDefinition builds the YAML structure for a level definition.
func FromDefinition(def core.LevelDefinition) YAMLLevel {
	yl := YAMLLevel{
		ID:          def.ID,
		Name:        def.Name,
		Difficulty:  def.Difficulty,
		Description: def.Description,
		GridSize:    def.GridSize,
		MinMoves:    def.MinMoves,
		Walls:       []YAMLCell{},
	}

	for _, w := range def.Walls {
		yl.Walls = append(yl.Walls, YAMLCell{X: w.X, Y: w.Y})
	}
	for _, e := range def.Emitters {
		ye := YAMLEmitter{X: e.Pos.X, Y: e.Pos.Y, Direction: e.Direction.String(), Color: e.Color.String()}
		if e.Disabled {
			off := false
			ye.Active = &off
		}
		yl.Emitters = append(yl.Emitters, ye)
	}
	for _, t := range def.Targets {
		yl.Targets = append(yl.Targets, YAMLTarget{X: t.Pos.X, Y: t.Pos.Y, RequiredColor: t.RequiredColor.String()})
	}
	if len(def.AvailablePieces) > 0 {
		yl.AvailablePieces = make(map[string]int, len(def.AvailablePieces))
		for name, count := range def.AvailablePieces {
			yl.AvailablePieces[name] = count
		}
	}

	return yl
}

// MarshalYAML encodes a level definition in the level file format.
func MarshalYAML(def core.LevelDefinition) ([]byte, error) {
	yl := FromDefinition(def)
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// PieceNames returns the inventory keys of a definition in sorted order.
func PieceNames(def core.LevelDefinition) []string {
	names := make([]string, 0, len(def.AvailablePieces))
	for name := range def.AvailablePieces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

// scriptFile is the YAML form of a move script:
//
//	moves:
//	  - {action: place, x: 5, y: 4, piece: mirror_left}
//	  - {action: rotate, x: 5, y: 4}
type scriptFile struct {
	Moves []scriptStep `yaml:"moves"`
}

type scriptStep struct {
	Action   string `yaml:"action"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Piece    string `yaml:"piece,omitempty"`
	Rotation int    `yaml:"rotation,omitempty"`
}

func (s scriptStep) toAction() core.Action {
	return core.Action{
		Type:     core.ActionType(strings.ToLower(s.Action)),
		X:        s.X,
		Y:        s.Y,
		Piece:    s.Piece,
		Rotation: s.Rotation,
	}
}

// parseStep parses the inline form ACTION:X,Y[:PIECE], e.g. place:5,4:mirror_left.
func parseStep(spec string) (core.Action, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return core.Action{}, fmt.Errorf("move %q: want ACTION:X,Y[:PIECE]", spec)
	}

	pos, err := core.ParseKey(parts[1])
	if err != nil {
		return core.Action{}, fmt.Errorf("move %q: %w", spec, err)
	}

	a := core.Action{
		Type: core.ActionType(strings.ToLower(strings.TrimSpace(parts[0]))),
		X:    pos.X,
		Y:    pos.Y,
	}
	if len(parts) == 3 {
		a.Piece = strings.TrimSpace(parts[2])
	}
	if a.Type == core.ActionPlace && a.Piece == "" {
		return core.Action{}, fmt.Errorf("move %q: place needs a piece", spec)
	}
	return a, nil
}

// loadScript reads a YAML move script.
func loadScript(path string) ([]core.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading moves %s: %w", path, err)
	}
	var sf scriptFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing moves %s: %w", path, err)
	}

	actions := make([]core.Action, len(sf.Moves))
	for i, step := range sf.Moves {
		actions[i] = step.toAction()
	}
	return actions, nil
}

// buildScript combines the moves file (if any) with inline moves, file first.
func buildScript(path string, inline []string) ([]core.Action, error) {
	var actions []core.Action
	if path != "" {
		fileActions, err := loadScript(path)
		if err != nil {
			return nil, err
		}
		actions = append(actions, fileActions...)
	}
	for _, spec := range inline {
		a, err := parseStep(spec)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// addScriptFlags registers --moves and --do on a command.
func addScriptFlags(cmd *cobra.Command, path *string, inline *[]string) {
	cmd.Flags().StringVar(path, "moves", "", "YAML file of moves to apply")
	cmd.Flags().StringArrayVar(inline, "do", nil, "Inline move ACTION:X,Y[:PIECE] (repeatable)")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

func TestParseStep(t *testing.T) {
	testCases := []struct {
		spec    string
		want    core.Action
		wantErr bool
	}{
		{"place:5,4:mirror_left", core.Action{Type: core.ActionPlace, X: 5, Y: 4, Piece: "mirror_left"}, false},
		{"ROTATE:5,4", core.Action{Type: core.ActionRotate, X: 5, Y: 4}, false},
		{"remove: 1, 2", core.Action{Type: core.ActionRemove, X: 1, Y: 2}, false},
		{"place:5,4", core.Action{}, true},
		{"place", core.Action{}, true},
		{"rotate:5;4", core.Action{}, true},
		{"place:1,1:prism:extra", core.Action{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := parseStep(tc.spec)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
moves:
  - {action: place, x: 5, y: 4, piece: mirror_left}
  - {action: Rotate, x: 5, y: 4}
`), 0o644))

	actions, err := buildScript(path, []string{"remove:5,4"})

	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, core.Action{Type: core.ActionPlace, X: 5, Y: 4, Piece: "mirror_left"}, actions[0])
	assert.Equal(t, core.ActionRotate, actions[1].Type)
	assert.Equal(t, core.ActionRemove, actions[2].Type)
}

func TestBuildScriptErrors(t *testing.T) {
	_, err := buildScript(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	_, err = buildScript("", []string{"jump"})
	assert.Error(t, err)
}

func TestScriptDrivesEngine(t *testing.T) {
	e := core.NewEngine()
	e.StartNewGame(core.LevelDefinition{
		GridSize: 10,
		Emitters: []core.Emitter{{Pos: core.C(0, 4), Direction: core.Right, Color: core.White}},
		Targets:  []core.Target{{Pos: core.C(5, 0), RequiredColor: core.White}},
	})

	actions, err := buildScript("", []string{"place:5,4:mirror_right"})
	require.NoError(t, err)
	for _, a := range actions {
		require.NoError(t, e.Apply(a))
	}

	e.CalculateLightPaths()
	assert.True(t, e.CheckVictory())
}

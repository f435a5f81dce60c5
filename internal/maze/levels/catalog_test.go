package levels_test

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
)

func TestBuiltinCatalog(t *testing.T) {
	cat, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	if cat.Count() != 8 {
		t.Fatalf("expected 8 built-in levels, got %d", cat.Count())
	}

	list := cat.List()
	for i, s := range list {
		if s.ID != i+1 {
			t.Errorf("expected level %d at index %d, got %d", i+1, i, s.ID)
		}
		if s.Name == "" || s.Difficulty == "" || s.Description == "" {
			t.Errorf("level %d: missing summary fields %+v", s.ID, s)
		}
	}
}

func TestBuiltinLevelsValidate(t *testing.T) {
	defs, err := levels.BuiltinLevels()
	if err != nil {
		t.Fatalf("BuiltinLevels failed: %v", err)
	}

	for _, def := range defs {
		if err := levels.Validate(def); err != nil {
			t.Errorf("level %d: %v", def.ID, err)
		}
	}
}

func TestBuiltinFirstLevel(t *testing.T) {
	cat, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	def, ok := cat.Get(1)
	if !ok {
		t.Fatal("level 1 missing")
	}
	if def.MinMoves != 2 || len(def.Walls) != 6 {
		t.Errorf("unexpected level 1: par %d walls %d", def.MinMoves, len(def.Walls))
	}
	if def.Emitters[0].Pos != core.C(1, 4) || def.Emitters[0].Direction != core.Right {
		t.Errorf("unexpected emitter %+v", def.Emitters[0])
	}

	// Without pieces the beam runs into the wall at (3,4).
	e := core.NewEngine()
	e.StartNewGame(def)
	paths := e.CalculateLightPaths()
	if len(paths) != 1 || paths[0].End != core.C(3, 4) {
		t.Errorf("expected beam to stop on the wall at (3,4), got %v", paths)
	}
	if e.CheckVictory() {
		t.Error("empty board should not win")
	}
}

func TestCatalogGetReturnsCopy(t *testing.T) {
	cat, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	def, _ := cat.Get(1)
	def.AvailablePieces["mirror_left"] = 99
	def.Walls[0] = core.C(0, 0)

	again, _ := cat.Get(1)
	if again.AvailablePieces["mirror_left"] != 1 || again.Walls[0] != core.C(3, 3) {
		t.Error("catalog entry was modified through a returned copy")
	}
}

func TestCatalogAdd(t *testing.T) {
	cat, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	custom, _ := cat.Get(1)
	custom.ID = 3
	custom.Name = "Custom"

	id := cat.Add(custom)

	if id != 9 {
		t.Errorf("expected id 9, got %d", id)
	}
	got, ok := cat.Get(9)
	if !ok || got.Name != "Custom" || got.ID != 9 {
		t.Errorf("unexpected stored level %+v", got)
	}
	if orig, _ := cat.Get(3); orig.Name == "Custom" {
		t.Error("Add must not overwrite the level with the definition's own ID")
	}
}

func TestCatalogAddEmpty(t *testing.T) {
	cat := levels.NewCatalog()

	if id := cat.Add(core.LevelDefinition{Name: "First"}); id != 1 {
		t.Errorf("expected id 1 in empty catalog, got %d", id)
	}
}

func TestCatalogMerge(t *testing.T) {
	cat, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	n, err := cat.Merge(getTestdataPath(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if n != 2 || cat.Count() != 10 {
		t.Errorf("expected 2 merged levels and 10 total, got %d and %d", n, cat.Count())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	defs, err := levels.BuiltinLevels()
	if err != nil {
		t.Fatalf("BuiltinLevels failed: %v", err)
	}

	for _, def := range defs {
		data, err := formats.MarshalYAML(def)
		if err != nil {
			t.Fatalf("level %d: marshal: %v", def.ID, err)
		}
		back, err := formats.ParseYAML(data)
		if err != nil {
			t.Fatalf("level %d: parse: %v", def.ID, err)
		}

		if back.ID != def.ID || back.Name != def.Name || back.MinMoves != def.MinMoves {
			t.Errorf("level %d: header mismatch", def.ID)
		}
		if len(back.Walls) != len(def.Walls) || len(back.Emitters) != len(def.Emitters) || len(back.Targets) != len(def.Targets) {
			t.Errorf("level %d: element count mismatch", def.ID)
		}
		for i := range def.Emitters {
			if back.Emitters[i] != def.Emitters[i] {
				t.Errorf("level %d: emitter %d: %+v != %+v", def.ID, i, back.Emitters[i], def.Emitters[i])
			}
		}
		for _, name := range formats.PieceNames(def) {
			if back.AvailablePieces[name] != def.AvailablePieces[name] {
				t.Errorf("level %d: inventory %s mismatch", def.ID, name)
			}
		}
	}
}

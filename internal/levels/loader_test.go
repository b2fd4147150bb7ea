package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

func TestBuiltinLevelsParse(t *testing.T) {
	builtin, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	if len(builtin) == 0 {
		t.Fatal("no built-in levels embedded")
	}
	for _, lvl := range builtin {
		if err := lvl.Validate(); err != nil {
			t.Errorf("built-in level %s invalid: %v", lvl.ID, err)
		}
		if lvl.FilePath != "" {
			t.Errorf("built-in level %s has a file path: %q", lvl.ID, lvl.FilePath)
		}
	}
}

func TestBuiltinQuarryLayoutIsQuiescent(t *testing.T) {
	loader := NewLoader("")
	lvl, err := loader.LoadByID("quarry")
	if err != nil {
		t.Fatalf("LoadByID(quarry) failed: %v", err)
	}
	if len(lvl.Layout) != lvl.BoardHeight {
		t.Fatalf("layout has %d rows, board height is %d", len(lvl.Layout), lvl.BoardHeight)
	}

	// Every session of a pinned-layout level must open without matches.
	e := match3.New(match3.DefaultRules())
	e.StartLevel(lvl.LevelConfig, 1)
	if groups := e.Board().FindMatches(); len(groups) != 0 {
		t.Errorf("quarry opens with %d matches:\n%s", len(groups), e.Board().String())
	}
}

func TestParseYAMLRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "name: X\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green, blue]\nobjectives: {red: 5}\n"},
		{"board too small", "id: x\nboard: {w: 2, h: 5}\nmoves: 10\ntile_types: [red, green, blue]\nobjectives: {red: 5}\n"},
		{"no moves", "id: x\nboard: {w: 5, h: 5}\ntile_types: [red, green, blue]\nobjectives: {red: 5}\n"},
		{"too few types", "id: x\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green]\nobjectives: {red: 5}\n"},
		{"unknown tile type", "id: x\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green, mauve]\nobjectives: {red: 5}\n"},
		{"no objectives", "id: x\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green, blue]\n"},
		{"objective outside tile set", "id: x\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green, blue]\nobjectives: {purple: 5}\n"},
		{"zero objective count", "id: x\nboard: {w: 5, h: 5}\nmoves: 10\ntile_types: [red, green, blue]\nobjectives: {red: 0}\n"},
		{"not yaml", "id: [unclosed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.yaml)); err == nil {
				t.Errorf("ParseYAML accepted: %s", tc.yaml)
			}
		})
	}
}

func TestLoaderUserFileOverridesBuiltin(t *testing.T) {
	tmpDir := t.TempDir()
	custom := `id: orchard
name: Custom Orchard
board: {w: 6, h: 6}
moves: 30
tile_types: [red, green, blue]
objectives:
  red: 5
`
	if err := os.WriteFile(filepath.Join(tmpDir, "orchard.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loader := NewLoader(tmpDir)
	lvl, err := loader.LoadByID("orchard")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Custom Orchard" || lvl.MoveBudget != 30 {
		t.Errorf("built-in not overridden: %+v", lvl.LevelConfig)
	}
	if lvl.FilePath == "" {
		t.Error("user level missing file path")
	}
}

func TestLoaderSkipsInvalidUserFiles(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "broken.yaml"), []byte("id: [nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loader := NewLoader(tmpDir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	// Only the built-ins remain
	builtin, _ := Builtin()
	if len(ids) != len(builtin) {
		t.Errorf("ListIDs = %v, expected only the %d built-ins", ids, len(builtin))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
		}
	}
}

func TestLoadByIDUnknown(t *testing.T) {
	loader := NewLoader("")
	if _, err := loader.LoadByID("atlantis"); err == nil {
		t.Error("LoadByID accepted an unknown level")
	}
}

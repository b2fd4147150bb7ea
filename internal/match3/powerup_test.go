package match3

import (
	"strings"
	"testing"
)

func TestPowerTypeTargeted(t *testing.T) {
	tests := []struct {
		kind     PowerType
		targeted bool
	}{
		{PowerHammer, true},
		{PowerBomb, true},
		{PowerColorBomb, true},
		{PowerShuffle, false},
		{PowerExtraMoves, false},
	}

	for _, tc := range tests {
		if got := tc.kind.Targeted(); got != tc.targeted {
			t.Errorf("%v.Targeted() = %v, expected %v", tc.kind, got, tc.targeted)
		}
	}
}

func TestParsePowerType(t *testing.T) {
	for _, kind := range PowerTypes() {
		parsed, err := ParsePowerType(kind.String())
		if err != nil || parsed != kind {
			t.Errorf("ParsePowerType(%q) = %v, %v", kind.String(), parsed, err)
		}
	}

	if _, err := ParsePowerType("dynamite"); err == nil {
		t.Error("ParsePowerType accepted an unknown power-up")
	}
}

func TestInventoryClone(t *testing.T) {
	inv := Inventory{PowerHammer: 2, PowerShuffle: 1}
	c := inv.Clone()

	c[PowerHammer] = 99
	if inv[PowerHammer] != 2 {
		t.Error("Clone shares storage with the original")
	}
}

func TestPowerResolverConsumeFloorsAtZero(t *testing.T) {
	r := newPowerResolver()
	r.inventory[PowerHammer] = 1

	r.consume(PowerHammer)
	if r.inventory[PowerHammer] != 0 {
		t.Fatalf("inventory = %d, expected 0", r.inventory[PowerHammer])
	}
	r.consume(PowerHammer)
	if r.inventory[PowerHammer] != 0 {
		t.Errorf("inventory = %d after over-consume, expected 0", r.inventory[PowerHammer])
	}
	if r.available(PowerHammer) {
		t.Error("available reports true at zero inventory")
	}
}

func TestBombClearsClippedNeighborhood(t *testing.T) {
	e, rec := newTestEngine(t, swapLayout5, map[TileType]int{TileGreen: 20}, 10)
	scriptPicks(e, []TileType{TilePurple, TileYellow, TileYellow, TilePurple})
	e.SetInventory(Inventory{PowerBomb: 1})

	if res := e.ActivatePower(PowerBomb); res != PowerArmed {
		t.Fatalf("ActivatePower = %v, expected PowerArmed", res)
	}
	// A corner target clips the 3x3 area to 2x2
	if res := e.ResolvePowerTarget(Position{Col: 0, Row: 0}); res != PowerApplied {
		t.Fatalf("ResolvePowerTarget = %v, expected PowerApplied", res)
	}
	e.Resolve()

	if len(rec.removed) != 4 {
		t.Errorf("removed %d tiles at a corner, expected 4", len(rec.removed))
	}
	if want := 4 * DefaultRules().BombUnitValue; e.Score() != want {
		t.Errorf("Score = %d, expected %d", e.Score(), want)
	}
	if e.MovesLeft() != 10 {
		t.Errorf("MovesLeft = %d, expected 10", e.MovesLeft())
	}
	if e.Inventory()[PowerBomb] != 0 {
		t.Errorf("bomb inventory = %d, expected 0", e.Inventory()[PowerBomb])
	}
	if strings.ContainsRune(e.Board().String(), '.') || len(e.Board().FindMatches()) != 0 {
		t.Errorf("board not refilled and quiescent:\n%s", e.Board().String())
	}
}

func TestBombClearsFullNeighborhood(t *testing.T) {
	e, rec := newTestEngine(t, swapLayout5, map[TileType]int{TileGreen: 20}, 10)
	scriptPicks(e, []TileType{
		TileGreen, TileYellow, TileRed,
		TileYellow, TileRed, TileGreen,
		TileRed, TileGreen, TileYellow,
	})
	e.SetInventory(Inventory{PowerBomb: 1})

	e.ActivatePower(PowerBomb)
	if res := e.ResolvePowerTarget(Position{Col: 2, Row: 2}); res != PowerApplied {
		t.Fatalf("ResolvePowerTarget = %v, expected PowerApplied", res)
	}
	e.Resolve()

	if len(rec.removed) != 9 {
		t.Errorf("removed %d tiles at the center, expected 9", len(rec.removed))
	}
	if want := 9 * DefaultRules().BombUnitValue; e.Score() != want {
		t.Errorf("Score = %d, expected %d", e.Score(), want)
	}
	if strings.ContainsRune(e.Board().String(), '.') || len(e.Board().FindMatches()) != 0 {
		t.Errorf("board not refilled and quiescent:\n%s", e.Board().String())
	}
}

func TestColorBombSweepsTargetType(t *testing.T) {
	// swapLayout5 holds exactly four yellow tiles.
	e, rec := newTestEngine(t, swapLayout5, map[TileType]int{TileGreen: 20}, 10)
	scriptPicks(e, []TileType{TilePurple, TilePurple, TileBlue, TilePurple})
	e.SetInventory(Inventory{PowerColorBomb: 1})

	if res := e.ActivatePower(PowerColorBomb); res != PowerArmed {
		t.Fatalf("ActivatePower = %v, expected PowerArmed", res)
	}
	if res := e.ResolvePowerTarget(Position{Col: 0, Row: 4}); res != PowerApplied {
		t.Fatalf("ResolvePowerTarget = %v, expected PowerApplied", res)
	}
	e.Resolve()

	if len(rec.removed) != 4 {
		t.Fatalf("removed %d tiles, expected every yellow (4)", len(rec.removed))
	}
	for i, tt := range rec.removedOf {
		if tt != TileYellow {
			t.Errorf("removed tile %d type = %v, expected yellow", i, tt)
		}
	}
	if want := 4 * DefaultRules().ColorBombUnitValue; e.Score() != want {
		t.Errorf("Score = %d, expected %d", e.Score(), want)
	}
	if strings.ContainsRune(e.Board().String(), 'y') {
		t.Errorf("yellow tiles remain after the sweep:\n%s", e.Board().String())
	}
	if e.MovesLeft() != 10 {
		t.Errorf("MovesLeft = %d, expected 10", e.MovesLeft())
	}
}

func TestSetInventoryClampsNegatives(t *testing.T) {
	e, _ := newTestEngine(t, swapLayout5, map[TileType]int{TileGreen: 10}, 10)
	e.SetInventory(Inventory{PowerHammer: -3, PowerShuffle: 2})

	inv := e.Inventory()
	if inv[PowerHammer] != 0 {
		t.Errorf("hammer = %d, expected 0 (negative input clamped)", inv[PowerHammer])
	}
	if inv[PowerShuffle] != 2 {
		t.Errorf("shuffle = %d, expected 2", inv[PowerShuffle])
	}
	if res := e.ActivatePower(PowerHammer); res != PowerUnavailable {
		t.Errorf("ActivatePower with clamped inventory = %v, expected PowerUnavailable", res)
	}
}

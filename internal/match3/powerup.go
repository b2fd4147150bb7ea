package match3

import "fmt"

// PowerType represents the consumable power-ups a player can trigger
// outside the normal swap flow.
type PowerType int

const (
	PowerHammer PowerType = iota
	PowerBomb
	PowerColorBomb
	PowerShuffle
	PowerExtraMoves
	powerTypeCount // Sentinel for counting types
)

// String returns the name of the power-up type.
func (p PowerType) String() string {
	switch p {
	case PowerHammer:
		return "hammer"
	case PowerBomb:
		return "bomb"
	case PowerColorBomb:
		return "color_bomb"
	case PowerShuffle:
		return "shuffle"
	case PowerExtraMoves:
		return "extra_moves"
	default:
		return "?"
	}
}

// Targeted returns true for power-ups that arm and await a target cell.
// Non-targeted kinds apply instantly on activation.
func (p PowerType) Targeted() bool {
	switch p {
	case PowerHammer, PowerBomb, PowerColorBomb:
		return true
	default:
		return false
	}
}

// ParsePowerType converts a power-up name to a PowerType.
func ParsePowerType(s string) (PowerType, error) {
	for p := PowerType(0); p < powerTypeCount; p++ {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("match3: unknown power-up %q", s)
}

// PowerTypes returns all power-up kinds in declaration order.
func PowerTypes() []PowerType {
	types := make([]PowerType, 0, powerTypeCount)
	for p := PowerType(0); p < powerTypeCount; p++ {
		types = append(types, p)
	}
	return types
}

// Inventory maps power-up kinds to their remaining counts. Counts are never
// negative; only the resolver mutates them during a session. Persistence
// across sessions belongs to the storage collaborator.
type Inventory map[PowerType]int

// Clone returns a copy of the inventory.
func (inv Inventory) Clone() Inventory {
	c := make(Inventory, len(inv))
	for k, v := range inv {
		c[k] = v
	}
	return c
}

// PowerResult is the outcome of a power-up activation or targeting call.
type PowerResult int

const (
	// PowerUnavailable means the call was rejected with no state change:
	// zero inventory, the session is resolving, or the target is invalid.
	PowerUnavailable PowerResult = iota

	// PowerArmed means a targeted power-up is waiting for a target cell.
	PowerArmed

	// PowerApplied means the effect executed and inventory was consumed.
	PowerApplied
)

// powerResolver is the small arm/target/execute state machine:
// Idle -> Armed(kind) -> Idle. Instantaneous kinds short-circuit straight to
// effect application without entering Armed.
type powerResolver struct {
	inventory Inventory
	armed     PowerType
	isArmed   bool
}

func newPowerResolver() powerResolver {
	return powerResolver{inventory: make(Inventory)}
}

// available reports whether the kind can be activated.
func (r *powerResolver) available(kind PowerType) bool {
	return r.inventory[kind] > 0
}

// arm transitions Idle -> Armed(kind). Inventory is consumed on execution,
// not on arming, so cancelling is free.
func (r *powerResolver) arm(kind PowerType) {
	r.armed = kind
	r.isArmed = true
}

// disarm returns to Idle without consuming inventory.
func (r *powerResolver) disarm() {
	r.isArmed = false
}

// consume decrements the inventory for the kind, flooring at zero.
func (r *powerResolver) consume(kind PowerType) {
	if r.inventory[kind] > 0 {
		r.inventory[kind]--
	}
}

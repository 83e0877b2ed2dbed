package console

import "github.com/haulage-game/haulage/pkg/world"

// Kind is one entity kind a command or match keyword can target.
type Kind int

const (
	KindTrain Kind = iota
	KindRoad
	KindShip
	KindAircraft
	KindTown
	KindIndustry
)

// KindSet is a set of entity kinds.
type KindSet uint8

const (
	ForTrain    KindSet = 1 << KindTrain
	ForRoad     KindSet = 1 << KindRoad
	ForShip     KindSet = 1 << KindShip
	ForAircraft KindSet = 1 << KindAircraft
	ForTown     KindSet = 1 << KindTown
	ForIndustry KindSet = 1 << KindIndustry

	AnyVehicle = ForTrain | ForRoad | ForShip | ForAircraft
)

// Has reports set membership.
func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

// Intersects reports whether the two sets share a kind.
func (s KindSet) Intersects(o KindSet) bool { return s&o != 0 }

// VehicleKind maps a world vehicle type to its console kind.
func VehicleKind(t world.VehicleType) Kind {
	switch t {
	case world.VehTrain:
		return KindTrain
	case world.VehRoad:
		return KindRoad
	case world.VehShip:
		return KindShip
	case world.VehAircraft:
		return KindAircraft
	}
	return KindTrain
}

// PreSet is the set of per-entity preconditions a command requires.
// Entities failing one are skipped silently between the matched and
// affected counts.
type PreSet uint8

const (
	PreNotCrashed PreSet = 1 << iota
	PreStopped
	PreInDepot
)

// Has reports precondition membership.
func (p PreSet) Has(q PreSet) bool { return p&q != 0 }

// Caps declares the closed applicability set of one command or match
// keyword: which entity kinds it supports, which preconditions its targets
// must satisfy, and two rendering/validity flags.
type Caps struct {
	Kinds      KindSet
	Pre        PreSet
	UsePrintf  bool // help text carries a %s for the entity-type noun
	EditorOnly bool // only valid in scenario editor mode
}

func forAll(kinds KindSet) Caps { return Caps{Kinds: kinds} }

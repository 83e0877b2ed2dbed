package world

import "fmt"

// Typed identifiers for the entity pools.
type (
	VehicleID  uint32
	TownID     uint16
	IndustryID uint16
	GroupID    uint16
	CompanyID  uint8
)

// Money is a signed amount in pounds.
type Money int64

const (
	InvalidCompany CompanyID = 0xFF
	InvalidGroup   GroupID   = 0xFFFF
)

// VehicleType identifies the transport mode of a vehicle.
type VehicleType int

const (
	VehTrain VehicleType = iota
	VehRoad
	VehShip
	VehAircraft
)

// Noun returns the lowercase display noun for the vehicle type.
func (t VehicleType) Noun() string {
	switch t {
	case VehTrain:
		return "train"
	case VehRoad:
		return "road vehicle"
	case VehShip:
		return "ship"
	case VehAircraft:
		return "aircraft"
	}
	return "vehicle"
}

// OrderType classifies a vehicle order.
type OrderType int

const (
	OrderGoto OrderType = iota
	OrderLoading
	OrderGotoDepot
)

// Order is one entry in a vehicle's order list.
type Order struct {
	Type      OrderType
	Dest      string
	DepotHalt bool // goto-depot order: stop in depot rather than service
}

// Wagon is one unit of a train consist. The head engine counts as a wagon.
type Wagon struct {
	Cargo       string
	CargoCap    int
	MaxSpeed    int
	Engine      bool
	Articulated bool // articulated part, not individually sellable
}

// Vehicle is one simulated vehicle of any type.
type Vehicle struct {
	ID         VehicleID
	UnitNumber int
	Name       string
	Type       VehicleType
	Owner      CompanyID
	Group      GroupID

	Crashed bool
	Stopped bool
	InDepot bool

	BreakdownCtr           int // nonzero while broken down
	BreakdownsSinceService int
	ServiceInterval        int // days or percent
	Reliability            int // percent

	CurSpeed int // km/h
	MaxSpeed int // km/h

	AgeDays    int
	MaxAgeDays int

	Orders   []Order
	CurOrder int

	ProfitThisYear Money
	ProfitLastYear Money

	// Train only.
	LengthTiles int
	Power       int
	WeightTons  int
	Wagons      []Wagon

	X, Y, Z int
}

// DisplayName returns the vehicle's user-visible name.
func (v *Vehicle) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%s %d", v.Type.Noun(), v.UnitNumber)
}

// NumOrders returns the number of orders in the vehicle's order list.
func (v *Vehicle) NumOrders() int { return len(v.Orders) }

// CurrentOrder returns the active order, or nil for an empty order list.
func (v *Vehicle) CurrentOrder() *Order {
	if v.CurOrder < 0 || v.CurOrder >= len(v.Orders) {
		return nil
	}
	return &v.Orders[v.CurOrder]
}

// CountWagons counts consist units including the engine and articulated parts.
func (v *Vehicle) CountWagons() int { return len(v.Wagons) }

// TownLayout is the road layout of a town.
type TownLayout int

const (
	LayoutOriginal TownLayout = iota
	LayoutBetterRoads
	Layout2x2
	Layout3x3
	LayoutRandom
)

// String returns a human-readable layout name.
func (l TownLayout) String() string {
	switch l {
	case LayoutOriginal:
		return "original"
	case LayoutBetterRoads:
		return "better roads"
	case Layout2x2:
		return "2x2"
	case Layout3x3:
		return "3x3"
	case LayoutRandom:
		return "random"
	}
	return "?"
}

// Town is one simulated town.
type Town struct {
	ID         TownID
	Name       string
	Population int
	Houses     int
	LargerTown bool
	Layout     TownLayout

	Ratings map[CompanyID]int

	NoiseReached int
	MaxNoise     int

	FundBuildingsMonths int
	RoadBuildMonths     int

	Exclusivity      CompanyID // company holding exclusive rights; InvalidCompany if none
	ExclusiveCounter int       // months remaining

	Unwanted map[CompanyID]int  // months unwanted due to bribe
	Statues  map[CompanyID]bool // companies with a statue here

	X, Y int
}

// HasStatue reports whether the given company has a statue in this town.
func (t *Town) HasStatue(c CompanyID) bool { return t.Statues[c] }

// Rating returns the town's rating of the given company.
func (t *Town) Rating(c CompanyID) int { return t.Ratings[c] }

// CargoStats tracks production and transport figures for one cargo slot.
type CargoStats struct {
	Cargo            string
	Rate             int // produced per month
	Waiting          int
	ThisProduced     int
	ThisTransported  int
	LastProduced     int
	LastTransported  int
}

// Industry is one simulated industry. Every industry belongs to a town.
type Industry struct {
	ID        IndustryID
	Town      TownID
	ProdLevel int
	Width     int
	Height    int

	Produced [2]CargoStats
	Accepts  []AcceptedCargo

	X, Y int
}

// AcceptedCargo is one cargo type an industry accepts.
type AcceptedCargo struct {
	Cargo   string
	Waiting int
}

// LastMonthProduction sums last month's production over both cargo slots.
func (i *Industry) LastMonthProduction() int {
	return i.Produced[0].LastProduced + i.Produced[1].LastProduced
}

// ThisMonthProduction sums this month's production over both cargo slots.
func (i *Industry) ThisMonthProduction() int {
	return i.Produced[0].ThisProduced + i.Produced[1].ThisProduced
}

// LastMonthTransportedPercent returns last month's transported percentage,
// zero when nothing was produced.
func (i *Industry) LastMonthTransportedPercent() int {
	prod := i.LastMonthProduction()
	if prod == 0 {
		return 0
	}
	tran := i.Produced[0].LastTransported + i.Produced[1].LastTransported
	return tran * 100 / prod
}

// ThisMonthTransportedPercent returns this month's transported percentage,
// zero when nothing was produced.
func (i *Industry) ThisMonthTransportedPercent() int {
	prod := i.ThisMonthProduction()
	if prod == 0 {
		return 0
	}
	tran := i.Produced[0].ThisTransported + i.Produced[1].ThisTransported
	return tran * 100 / prod
}

// Group is a named vehicle group owned by one company.
type Group struct {
	ID    GroupID
	Name  string
	Owner CompanyID
}

// Company is one transport company.
type Company struct {
	ID    CompanyID
	Name  string
	Money Money
}

package world

// ActionID identifies one game action the console can submit.
type ActionID int

const (
	ActStartStopVehicle ActionID = iota + 1
	ActSendToDepot               // params[0]: 1 = service only
	ActCloneVehicle              // params[0]: 1 = shared orders
	ActSellVehicle
	ActSellWagon // params[0]: consist index to sell
	ActSkipToOrder
	ActReverseVehicle
	ActForceProceed
	ActChangeServiceInterval
	ActTownAction // params[0]: town action number
	ActGrowTown
	ActDeleteTown
	ActDeleteIndustry
)

// EntityClass tags a Ref with the pool it refers to.
type EntityClass int

const (
	ClassVehicle EntityClass = iota
	ClassTown
	ClassIndustry
)

// Ref is a typed reference to one entity for action submission.
type Ref struct {
	Class EntityClass
	ID    uint32
}

// VehicleRef builds a Ref for a vehicle.
func VehicleRef(id VehicleID) Ref { return Ref{Class: ClassVehicle, ID: uint32(id)} }

// TownRef builds a Ref for a town.
func TownRef(id TownID) Ref { return Ref{Class: ClassTown, ID: uint32(id)} }

// IndustryRef builds a Ref for an industry.
func IndustryRef(id IndustryID) Ref { return Ref{Class: ClassIndustry, ID: uint32(id)} }

// Town action numbers, in the order the authority window lists them.
const (
	TownActAdSmall = iota
	TownActAdMedium
	TownActAdLarge
	TownActRoad
	TownActStatue
	TownActFund
	TownActExclusive
	TownActBribe
)

// Submitter is the single mutation primitive available to the console.
// Submit returns true when the action was accepted.
type Submitter interface {
	Submit(ref Ref, action ActionID, params ...int) bool
}

func param(params []int, i, def int) int {
	if i < len(params) {
		return params[i]
	}
	return def
}

// Submit applies a game action to the world. Rejections (stale references,
// out-of-range parameters) return false and change nothing.
func (w *World) Submit(ref Ref, action ActionID, params ...int) bool {
	switch ref.Class {
	case ClassVehicle:
		v, ok := w.Vehicle(VehicleID(ref.ID))
		if !ok {
			return false
		}
		return w.submitVehicle(v, action, params)
	case ClassTown:
		t, ok := w.Town(TownID(ref.ID))
		if !ok {
			return false
		}
		return w.submitTown(t, action, params)
	case ClassIndustry:
		i, ok := w.Industry(IndustryID(ref.ID))
		if !ok {
			return false
		}
		return w.submitIndustry(i, action, params)
	}
	return false
}

func (w *World) submitVehicle(v *Vehicle, action ActionID, params []int) bool {
	switch action {
	case ActStartStopVehicle:
		v.Stopped = !v.Stopped
		if v.Stopped {
			v.CurSpeed = 0
		}
		return true

	case ActSendToDepot:
		service := param(params, 0, 0) == 1
		if cur := v.CurrentOrder(); cur != nil && cur.Type == OrderGotoDepot {
			// Heading to a depot already: a second submission cancels.
			v.Orders = append(v.Orders[:v.CurOrder], v.Orders[v.CurOrder+1:]...)
			if v.CurOrder >= len(v.Orders) {
				v.CurOrder = 0
			}
			return true
		}
		// Insert a depot order at the current position so it becomes active.
		ord := Order{Type: OrderGotoDepot, Dest: "depot", DepotHalt: !service}
		if v.CurOrder < 0 || v.CurOrder > len(v.Orders) {
			v.CurOrder = 0
		}
		v.Orders = append(v.Orders, Order{})
		copy(v.Orders[v.CurOrder+1:], v.Orders[v.CurOrder:])
		v.Orders[v.CurOrder] = ord
		return true

	case ActCloneVehicle:
		if !v.InDepot {
			return false
		}
		clone := *v
		clone.ID = 0
		clone.UnitNumber = 0
		clone.Name = ""
		clone.ProfitThisYear = 0
		clone.ProfitLastYear = 0
		if param(params, 0, 0) != 1 {
			clone.Orders = append([]Order(nil), v.Orders...)
		}
		clone.Wagons = append([]Wagon(nil), v.Wagons...)
		w.AddVehicle(&clone)
		return true

	case ActSellVehicle:
		w.RemoveVehicle(v.ID)
		return true

	case ActSellWagon:
		idx := param(params, 0, -1)
		if v.Type != VehTrain || idx < 0 || idx >= len(v.Wagons) {
			return false
		}
		v.Wagons = append(v.Wagons[:idx], v.Wagons[idx+1:]...)
		return true

	case ActSkipToOrder:
		ord := param(params, 0, 0)
		if ord < 0 || ord >= len(v.Orders) {
			return false
		}
		v.CurOrder = ord
		return true

	case ActReverseVehicle:
		if v.Type != VehTrain && v.Type != VehRoad {
			return false
		}
		return true

	case ActForceProceed:
		if v.Type != VehTrain {
			return false
		}
		return true

	case ActChangeServiceInterval:
		v.ServiceInterval = param(params, 0, v.ServiceInterval)
		return true
	}
	return false
}

func (w *World) submitTown(t *Town, action ActionID, params []int) bool {
	switch action {
	case ActTownAction:
		c, ok := w.Company(w.LocalCompany())
		if !ok {
			return false
		}
		switch param(params, 0, -1) {
		case TownActAdSmall, TownActAdMedium, TownActAdLarge:
			t.Ratings[c.ID] += 20
		case TownActRoad:
			t.RoadBuildMonths = 6
		case TownActStatue:
			t.Statues[c.ID] = true
		case TownActFund:
			t.FundBuildingsMonths = 3
		case TownActExclusive:
			t.Exclusivity = c.ID
			t.ExclusiveCounter = 12
		case TownActBribe:
			t.Ratings[c.ID] += 50
		default:
			return false
		}
		return true

	case ActGrowTown:
		t.Houses++
		t.Population += 10
		return true

	case ActDeleteTown:
		w.RemoveTown(t.ID)
		return true
	}
	return false
}

func (w *World) submitIndustry(i *Industry, action ActionID, params []int) bool {
	switch action {
	case ActDeleteIndustry:
		w.RemoveIndustry(i.ID)
		return true
	}
	return false
}

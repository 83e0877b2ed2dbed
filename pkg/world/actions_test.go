package world

import "testing"

func newVehicleWorld(t *testing.T) (*World, *Vehicle) {
	t.Helper()
	w := New()
	w.AddCompany(&Company{ID: 1, Name: "Haulage Ltd"})
	w.SetLocalCompany(1)
	id := w.AddVehicle(&Vehicle{Type: VehTrain, Owner: 1,
		Orders: []Order{{Type: OrderGoto, Dest: "a"}, {Type: OrderGoto, Dest: "b"}},
		Wagons: []Wagon{{Engine: true}, {Cargo: "coal", CargoCap: 30}, {Cargo: "coal", CargoCap: 30}}})
	v, _ := w.Vehicle(id)
	return w, v
}

func TestStartStopToggle(t *testing.T) {
	w, v := newVehicleWorld(t)
	v.CurSpeed = 80

	if !w.Submit(VehicleRef(v.ID), ActStartStopVehicle) {
		t.Fatal("stop rejected")
	}
	if !v.Stopped || v.CurSpeed != 0 {
		t.Fatalf("stopped=%v speed=%d after stop", v.Stopped, v.CurSpeed)
	}
	if !w.Submit(VehicleRef(v.ID), ActStartStopVehicle) {
		t.Fatal("start rejected")
	}
	if v.Stopped {
		t.Fatal("still stopped after start")
	}
}

func TestSendToDepotInsertsAndCancels(t *testing.T) {
	w, v := newVehicleWorld(t)
	v.CurOrder = 1

	if !w.Submit(VehicleRef(v.ID), ActSendToDepot) {
		t.Fatal("depot order rejected")
	}
	if len(v.Orders) != 3 {
		t.Fatalf("orders = %d, want 3", len(v.Orders))
	}
	cur := v.CurrentOrder()
	if cur == nil || cur.Type != OrderGotoDepot || !cur.DepotHalt {
		t.Fatalf("current order = %+v, want active halting depot order", cur)
	}
	// The original destination is preserved after the inserted order.
	if v.Orders[2].Dest != "b" {
		t.Fatalf("orders[2] = %+v, want shifted goto b", v.Orders[2])
	}

	// Resubmitting cancels the depot order.
	if !w.Submit(VehicleRef(v.ID), ActSendToDepot) {
		t.Fatal("cancel rejected")
	}
	if len(v.Orders) != 2 || v.Orders[1].Type != OrderGoto {
		t.Fatalf("orders after cancel = %+v", v.Orders)
	}
}

func TestSendToDepotServiceFlag(t *testing.T) {
	w, v := newVehicleWorld(t)
	if !w.Submit(VehicleRef(v.ID), ActSendToDepot, 1) {
		t.Fatal("service order rejected")
	}
	cur := v.CurrentOrder()
	if cur == nil || cur.Type != OrderGotoDepot || cur.DepotHalt {
		t.Fatalf("current order = %+v, want non-halting depot order", cur)
	}
}

func TestCloneOnlyInDepot(t *testing.T) {
	w, v := newVehicleWorld(t)
	if w.Submit(VehicleRef(v.ID), ActCloneVehicle) {
		t.Fatal("clone accepted outside depot")
	}
	v.InDepot = true
	if !w.Submit(VehicleRef(v.ID), ActCloneVehicle) {
		t.Fatal("clone rejected in depot")
	}
	vehicles, _, _ := w.Counts()
	if vehicles != 2 {
		t.Fatalf("vehicles = %d, want 2", vehicles)
	}
	// The clone got its own id and unit number.
	clone, ok := w.Vehicle(v.ID + 1)
	if !ok || clone.UnitNumber == v.UnitNumber {
		t.Fatalf("clone = %+v", clone)
	}
}

func TestSellWagonRemovesUnit(t *testing.T) {
	w, v := newVehicleWorld(t)
	if !w.Submit(VehicleRef(v.ID), ActSellWagon, 1) {
		t.Fatal("wagon sale rejected")
	}
	if len(v.Wagons) != 2 {
		t.Fatalf("wagons = %d, want 2", len(v.Wagons))
	}
	if w.Submit(VehicleRef(v.ID), ActSellWagon, 5) {
		t.Fatal("out-of-range wagon sale accepted")
	}
}

func TestSellVehicleRemovesFromPool(t *testing.T) {
	w, v := newVehicleWorld(t)
	if !w.Submit(VehicleRef(v.ID), ActSellVehicle) {
		t.Fatal("sale rejected")
	}
	if _, ok := w.Vehicle(v.ID); ok {
		t.Fatal("vehicle still in pool")
	}
	// Actions against a stale reference are rejected.
	if w.Submit(VehicleRef(v.ID), ActStartStopVehicle) {
		t.Fatal("action on removed vehicle accepted")
	}
}

func TestSkipToOrderBounds(t *testing.T) {
	w, v := newVehicleWorld(t)
	if !w.Submit(VehicleRef(v.ID), ActSkipToOrder, 1) {
		t.Fatal("skip rejected")
	}
	if v.CurOrder != 1 {
		t.Fatalf("CurOrder = %d, want 1", v.CurOrder)
	}
	if w.Submit(VehicleRef(v.ID), ActSkipToOrder, 5) {
		t.Fatal("out-of-range skip accepted")
	}
}

func TestTownActions(t *testing.T) {
	w := New()
	w.AddCompany(&Company{ID: 1})
	w.SetLocalCompany(1)
	tid := w.AddTown(&Town{Name: "Sundingburg"})
	tn, _ := w.Town(tid)

	if !w.Submit(TownRef(tid), ActTownAction, TownActStatue) {
		t.Fatal("statue rejected")
	}
	if !tn.HasStatue(1) {
		t.Fatal("statue not recorded")
	}
	if !w.Submit(TownRef(tid), ActTownAction, TownActExclusive) {
		t.Fatal("exclusive rejected")
	}
	if tn.Exclusivity != 1 || tn.ExclusiveCounter == 0 {
		t.Fatalf("exclusivity = %d/%d", tn.Exclusivity, tn.ExclusiveCounter)
	}
	if w.Submit(TownRef(tid), ActTownAction, 99) {
		t.Fatal("unknown town action accepted")
	}
}

func TestTownActionNeedsCompany(t *testing.T) {
	w := New()
	tid := w.AddTown(&Town{Name: "Sundingburg"})
	if w.Submit(TownRef(tid), ActTownAction, TownActStatue) {
		t.Fatal("town action accepted without a local company")
	}
}

func TestDeleteTownCascadesIndustries(t *testing.T) {
	w := New()
	tid := w.AddTown(&Town{Name: "Sundingburg"})
	w.AddIndustry(&Industry{Town: tid})
	w.AddIndustry(&Industry{Town: tid})

	if !w.Submit(TownRef(tid), ActDeleteTown) {
		t.Fatal("delete rejected")
	}
	_, towns, industries := w.Counts()
	if towns != 0 || industries != 0 {
		t.Fatalf("towns=%d industries=%d after delete, want 0/0", towns, industries)
	}
}

func TestGrowTown(t *testing.T) {
	w := New()
	tid := w.AddTown(&Town{Name: "Sundingburg", Population: 100, Houses: 10})
	tn, _ := w.Town(tid)
	if !w.Submit(TownRef(tid), ActGrowTown) {
		t.Fatal("grow rejected")
	}
	if tn.Houses != 11 || tn.Population <= 100 {
		t.Fatalf("houses=%d population=%d after grow", tn.Houses, tn.Population)
	}
}

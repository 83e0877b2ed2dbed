package world

import (
	"fmt"
	"sort"
	"sync"
)

// World holds every entity pool plus the bits of global state the console
// cares about (local company, editor mode, pause, game date). All access from
// the console goes through the accessors below; the session loop serializes
// command execution, the mutex only guards against background observers
// (metrics, savegame) reading mid-mutation.
type World struct {
	mu sync.RWMutex

	editor bool
	paused bool

	year, month, day int

	localCompany CompanyID

	vehicles   map[VehicleID]*Vehicle
	towns      map[TownID]*Town
	industries map[IndustryID]*Industry
	groups     map[GroupID]*Group
	companies  map[CompanyID]*Company

	nextVehicle  VehicleID
	nextTown     TownID
	nextIndustry IndustryID
	nextGroup    GroupID
	nextUnit     map[VehicleType]int
}

// New creates an empty world with no local company and date 1950-01-01.
func New() *World {
	return &World{
		year:         1950,
		month:        1,
		day:          1,
		localCompany: InvalidCompany,
		vehicles:     make(map[VehicleID]*Vehicle),
		towns:        make(map[TownID]*Town),
		industries:   make(map[IndustryID]*Industry),
		groups:       make(map[GroupID]*Group),
		companies:    make(map[CompanyID]*Company),
		nextVehicle:  1,
		nextTown:     1,
		nextIndustry: 1,
		nextGroup:    1,
		nextUnit:     make(map[VehicleType]int),
	}
}

// EditorMode reports whether the world is in scenario editor mode.
func (w *World) EditorMode() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.editor
}

// SetEditorMode switches scenario editor mode on or off.
func (w *World) SetEditorMode(on bool) {
	w.mu.Lock()
	w.editor = on
	w.mu.Unlock()
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.paused
}

// SetPaused pauses or resumes the simulation.
func (w *World) SetPaused(p bool) {
	w.mu.Lock()
	w.paused = p
	w.mu.Unlock()
}

// Date returns the current game date as "YYYY-MM-DD".
func (w *World) Date() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return fmt.Sprintf("%04d-%02d-%02d", w.year, w.month, w.day)
}

// SetDate sets the game date.
func (w *World) SetDate(year, month, day int) {
	w.mu.Lock()
	w.year, w.month, w.day = year, month, day
	w.mu.Unlock()
}

// LocalCompany returns the company the console acts for.
func (w *World) LocalCompany() CompanyID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.localCompany
}

// HasLocalCompany reports whether an owned company context exists.
func (w *World) HasLocalCompany() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.companies[w.localCompany]
	return ok
}

// SetLocalCompany sets the company the console acts for.
func (w *World) SetLocalCompany(c CompanyID) {
	w.mu.Lock()
	w.localCompany = c
	w.mu.Unlock()
}

// AddCompany registers a company.
func (w *World) AddCompany(c *Company) {
	w.mu.Lock()
	w.companies[c.ID] = c
	w.mu.Unlock()
}

// Company looks up a company by id.
func (w *World) Company(id CompanyID) (*Company, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.companies[id]
	return c, ok
}

// Companies returns all companies ordered by id.
func (w *World) Companies() []*Company {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Company, 0, len(w.companies))
	for _, c := range w.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddVehicle inserts a vehicle, assigning its id and per-type unit number
// when unset.
func (w *World) AddVehicle(v *Vehicle) VehicleID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v.ID == 0 {
		v.ID = w.nextVehicle
		w.nextVehicle++
	} else if v.ID >= w.nextVehicle {
		w.nextVehicle = v.ID + 1
	}
	if v.UnitNumber == 0 {
		w.nextUnit[v.Type]++
		v.UnitNumber = w.nextUnit[v.Type]
	} else if v.UnitNumber > w.nextUnit[v.Type] {
		w.nextUnit[v.Type] = v.UnitNumber
	}
	if v.Group == 0 {
		v.Group = InvalidGroup
	}
	w.vehicles[v.ID] = v
	return v.ID
}

// Vehicle looks up a vehicle by id.
func (w *World) Vehicle(id VehicleID) (*Vehicle, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	v, ok := w.vehicles[id]
	return v, ok
}

// VehicleIDs returns a sorted snapshot of all vehicle ids. Snapshotting the
// ids keeps iteration safe when a dispatched action deletes the current
// entity (sell, wsell).
func (w *World) VehicleIDs() []VehicleID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]VehicleID, 0, len(w.vehicles))
	for id := range w.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RemoveVehicle deletes a vehicle from the pool.
func (w *World) RemoveVehicle(id VehicleID) {
	w.mu.Lock()
	delete(w.vehicles, id)
	w.mu.Unlock()
}

// AddTown inserts a town, assigning its id when unset.
func (w *World) AddTown(t *Town) TownID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t.ID == 0 {
		t.ID = w.nextTown
		w.nextTown++
	} else if t.ID >= w.nextTown {
		w.nextTown = t.ID + 1
	}
	if t.Ratings == nil {
		t.Ratings = make(map[CompanyID]int)
	}
	if t.Unwanted == nil {
		t.Unwanted = make(map[CompanyID]int)
	}
	if t.Statues == nil {
		t.Statues = make(map[CompanyID]bool)
	}
	if t.Exclusivity == 0 && t.ExclusiveCounter == 0 {
		t.Exclusivity = InvalidCompany
	}
	w.towns[t.ID] = t
	return t.ID
}

// Town looks up a town by id.
func (w *World) Town(id TownID) (*Town, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	t, ok := w.towns[id]
	return t, ok
}

// TownIDs returns a sorted snapshot of all town ids.
func (w *World) TownIDs() []TownID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]TownID, 0, len(w.towns))
	for id := range w.towns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RemoveTown deletes a town and every industry attached to it.
func (w *World) RemoveTown(id TownID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.towns, id)
	for iid, ind := range w.industries {
		if ind.Town == id {
			delete(w.industries, iid)
		}
	}
}

// AddIndustry inserts an industry, assigning its id when unset.
func (w *World) AddIndustry(i *Industry) IndustryID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i.ID == 0 {
		i.ID = w.nextIndustry
		w.nextIndustry++
	} else if i.ID >= w.nextIndustry {
		w.nextIndustry = i.ID + 1
	}
	if i.ProdLevel == 0 {
		i.ProdLevel = 16
	}
	w.industries[i.ID] = i
	return i.ID
}

// Industry looks up an industry by id.
func (w *World) Industry(id IndustryID) (*Industry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	i, ok := w.industries[id]
	return i, ok
}

// IndustryIDs returns a sorted snapshot of all industry ids.
func (w *World) IndustryIDs() []IndustryID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]IndustryID, 0, len(w.industries))
	for id := range w.industries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RemoveIndustry deletes an industry from the pool.
func (w *World) RemoveIndustry(id IndustryID) {
	w.mu.Lock()
	delete(w.industries, id)
	w.mu.Unlock()
}

// AddGroup inserts a vehicle group, assigning its id when unset.
func (w *World) AddGroup(g *Group) GroupID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if g.ID == 0 {
		g.ID = w.nextGroup
		w.nextGroup++
	} else if g.ID >= w.nextGroup {
		w.nextGroup = g.ID + 1
	}
	w.groups[g.ID] = g
	return g.ID
}

// Group looks up a group by id.
func (w *World) Group(id GroupID) (*Group, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.groups[id]
	return g, ok
}

// Groups returns all groups ordered by id.
func (w *World) Groups() []*Group {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Group, 0, len(w.groups))
	for _, g := range w.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Counts returns the pool sizes (vehicles, towns, industries).
func (w *World) Counts() (vehicles, towns, industries int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.vehicles), len(w.towns), len(w.industries)
}

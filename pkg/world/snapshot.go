package world

import (
	"cmp"
	"slices"
)

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot is the serializable image of a world. All fields are exported
// so gob can encode them.
type Snapshot struct {
	Editor bool
	Paused bool

	Year, Month, Day int

	LocalCompany CompanyID

	Vehicles   []Vehicle
	Towns      []Town
	Industries []Industry
	Groups     []Group
	Companies  []Company
}

// Snapshot captures the current world state.
func (w *World) Snapshot() *Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s := &Snapshot{
		Editor:       w.editor,
		Paused:       w.paused,
		Year:         w.year,
		Month:        w.month,
		Day:          w.day,
		LocalCompany: w.localCompany,
	}
	for _, id := range sortedKeys(w.vehicles) {
		s.Vehicles = append(s.Vehicles, *w.vehicles[id])
	}
	for _, id := range sortedKeys(w.towns) {
		s.Towns = append(s.Towns, *w.towns[id])
	}
	for _, id := range sortedKeys(w.industries) {
		s.Industries = append(s.Industries, *w.industries[id])
	}
	for _, id := range sortedKeys(w.groups) {
		s.Groups = append(s.Groups, *w.groups[id])
	}
	for _, id := range sortedKeys(w.companies) {
		s.Companies = append(s.Companies, *w.companies[id])
	}
	return s
}

// Restore replaces the world state with the snapshot's contents.
func (w *World) Restore(s *Snapshot) {
	w.mu.Lock()
	w.editor = s.Editor
	w.paused = s.Paused
	w.year, w.month, w.day = s.Year, s.Month, s.Day
	w.localCompany = s.LocalCompany
	w.vehicles = make(map[VehicleID]*Vehicle, len(s.Vehicles))
	w.towns = make(map[TownID]*Town, len(s.Towns))
	w.industries = make(map[IndustryID]*Industry, len(s.Industries))
	w.groups = make(map[GroupID]*Group, len(s.Groups))
	w.companies = make(map[CompanyID]*Company, len(s.Companies))
	w.nextVehicle = 1
	w.nextTown = 1
	w.nextIndustry = 1
	w.nextGroup = 1
	w.nextUnit = make(map[VehicleType]int)
	w.mu.Unlock()

	// Re-add through the insert paths so the id and unit counters advance
	// past every restored entity.
	for i := range s.Companies {
		c := s.Companies[i]
		w.AddCompany(&c)
	}
	for i := range s.Groups {
		g := s.Groups[i]
		w.AddGroup(&g)
	}
	for i := range s.Towns {
		t := s.Towns[i]
		w.AddTown(&t)
	}
	for i := range s.Industries {
		ind := s.Industries[i]
		w.AddIndustry(&ind)
	}
	for i := range s.Vehicles {
		v := s.Vehicles[i]
		w.AddVehicle(&v)
	}
}

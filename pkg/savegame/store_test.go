package savegame

import (
	"path/filepath"
	"testing"

	"github.com/haulage-game/haulage/pkg/world"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	w := world.New()
	w.SetDate(1974, 6, 1)
	w.AddCompany(&world.Company{ID: 1, Name: "Haulage Ltd"})
	w.SetLocalCompany(1)
	tid := w.AddTown(&world.Town{Name: "Sundingburg", Population: 2400})
	w.AddIndustry(&world.Industry{Town: tid})
	w.AddVehicle(&world.Vehicle{Type: world.VehTrain, Owner: 1, MaxSpeed: 160})

	if err := s.Save(w, "before"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	w.RemoveTown(tid)
	w.SetDate(1980, 1, 1)

	if err := s.Load(w, "before"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Date() != "1974-06-01" {
		t.Errorf("date = %s", w.Date())
	}
	vehicles, towns, industries := w.Counts()
	if vehicles != 1 || towns != 1 || industries != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/1", vehicles, towns, industries)
	}
}

func TestLoadMissingSave(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(world.New(), "nope"); err == nil {
		t.Fatal("loading a missing save succeeded")
	}
}

func TestListAndDelete(t *testing.T) {
	s := newTestStore(t)
	w := world.New()
	if err := s.Save(w, "bravo"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(w, "alpha"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "bravo" {
		t.Fatalf("names = %v", names)
	}

	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	names, _ = s.List()
	if len(names) != 1 || names[0] != "bravo" {
		t.Fatalf("names after delete = %v", names)
	}
	// Deleting a missing save is not an error.
	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestSaveOverwrite(t *testing.T) {
	s := newTestStore(t)
	w := world.New()
	w.AddTown(&world.Town{Name: "Sundingburg"})
	if err := s.Save(w, "slot"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	w.AddTown(&world.Town{Name: "Flanfingway"})
	if err := s.Save(w, "slot"); err != nil {
		t.Fatalf("re-Save: %v", err)
	}

	w2 := world.New()
	if err := s.Load(w2, "slot"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, towns, _ := w2.Counts(); towns != 2 {
		t.Fatalf("towns = %d, want 2", towns)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/haulage-game/haulage/pkg/server"
	"github.com/haulage-game/haulage/pkg/world"
)

// envDefault returns the environment variable value if set, otherwise the fallback.
func envDefault(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

func main() {
	confFile := flag.String("conf", envDefault("HAULAGE_CONF", ""), "Path to config file (env: HAULAGE_CONF)")
	port := flag.Int("port", 0, "TCP port to listen on, overrides config (env: HAULAGE_PORT)")
	aliasFile := flag.String("aliasfile", envDefault("HAULAGE_ALIASFILE", ""), "Path to console alias file (env: HAULAGE_ALIASFILE)")
	savePath := flag.String("saves", envDefault("HAULAGE_SAVES", ""), "Path to savegame database, overrides config (env: HAULAGE_SAVES)")
	demo := flag.Bool("demo", os.Getenv("HAULAGE_DEMO") == "true", "Seed a small demo world (env: HAULAGE_DEMO)")
	flag.Parse()

	cfg := server.DefaultConfig()
	if *confFile != "" {
		var err error
		cfg, err = server.LoadConfig(*confFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		log.Printf("Loaded config from %s", *confFile)
	}

	if *port == 0 {
		if envPort := os.Getenv("HAULAGE_PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				*port = p
			}
		}
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *aliasFile != "" {
		cfg.AliasFile = *aliasFile
	}
	if *savePath != "" {
		cfg.SavePath = *savePath
	}

	w := world.New()
	w.SetEditorMode(cfg.EditorMode)
	if *demo {
		seedDemoWorld(w)
		vehicles, towns, industries := w.Counts()
		log.Printf("Demo world seeded: %d vehicles, %d towns, %d industries",
			vehicles, towns, industries)
	}

	srv := server.NewServer(w, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting %s on port %d...", cfg.ServerName, cfg.Port)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// seedDemoWorld fills the world with enough entities to exercise the
// console interactively.
func seedDemoWorld(w *world.World) {
	w.AddCompany(&world.Company{ID: 1, Name: "Haulage Ltd", Money: 500000})
	w.AddCompany(&world.Company{ID: 2, Name: "Rival Transport", Money: 350000})
	w.SetLocalCompany(1)

	fast := w.AddGroup(&world.Group{Name: "expresses", Owner: 1})
	coal := w.AddGroup(&world.Group{Name: "coal haulers", Owner: 1})

	t1 := w.AddTown(&world.Town{Name: "Sundingburg", Population: 2400, Houses: 120,
		MaxNoise: 16, X: 100, Y: 200})
	t2 := w.AddTown(&world.Town{Name: "Flanfingway", Population: 11200, Houses: 410,
		LargerTown: true, Layout: world.Layout2x2, MaxNoise: 40, X: 300, Y: 80})
	w.AddTown(&world.Town{Name: "Great Torpford", Population: 800, Houses: 52,
		MaxNoise: 8, X: 40, Y: 340})

	w.AddIndustry(&world.Industry{Town: t1, Width: 4, Height: 4, X: 110, Y: 210,
		Produced: [2]world.CargoStats{{Cargo: "coal", Rate: 120, LastProduced: 112, LastTransported: 60}}})
	w.AddIndustry(&world.Industry{Town: t2, Width: 3, Height: 2, X: 290, Y: 90,
		Produced: [2]world.CargoStats{{Cargo: "goods", Rate: 44, LastProduced: 40, LastTransported: 35}},
		Accepts:  []world.AcceptedCargo{{Cargo: "steel", Waiting: 12}}})

	w.AddVehicle(&world.Vehicle{Type: world.VehTrain, Owner: 1, Group: fast,
		MaxSpeed: 160, CurSpeed: 120, AgeDays: 3 * 365, MaxAgeDays: 20 * 365,
		ServiceInterval: 150, Reliability: 92, LengthTiles: 6, Power: 4000, WeightTons: 320,
		ProfitThisYear: 21000, ProfitLastYear: 18500,
		Orders: []world.Order{{Type: world.OrderGoto, Dest: "Sundingburg"}, {Type: world.OrderGoto, Dest: "Flanfingway"}},
		Wagons: []world.Wagon{{Engine: true, MaxSpeed: 160}, {Cargo: "passengers", CargoCap: 40, MaxSpeed: 160}, {Cargo: "mail", CargoCap: 20, MaxSpeed: 160}},
		X:      120, Y: 180, Z: 2})
	w.AddVehicle(&world.Vehicle{Type: world.VehTrain, Owner: 1, Group: coal,
		MaxSpeed: 80, CurSpeed: 64, AgeDays: 9 * 365, MaxAgeDays: 25 * 365,
		ServiceInterval: 100, Reliability: 74, BreakdownsSinceService: 2,
		LengthTiles: 8, Power: 2200, WeightTons: 540,
		ProfitThisYear: 9000, ProfitLastYear: 12400,
		Orders: []world.Order{{Type: world.OrderGoto, Dest: "colliery"}, {Type: world.OrderGoto, Dest: "power station"}},
		Wagons: []world.Wagon{{Engine: true, MaxSpeed: 80}, {Cargo: "coal", CargoCap: 30, MaxSpeed: 80}, {Cargo: "coal", CargoCap: 30, MaxSpeed: 80}, {Cargo: "coal", CargoCap: 30, MaxSpeed: 80}},
		X:      60, Y: 300, Z: 1})
	w.AddVehicle(&world.Vehicle{Type: world.VehRoad, Owner: 1,
		MaxSpeed: 96, CurSpeed: 0, Stopped: true, InDepot: true,
		AgeDays: 365, MaxAgeDays: 12 * 365, ServiceInterval: 120, Reliability: 88,
		ProfitThisYear: 1200, ProfitLastYear: 900,
		Orders: []world.Order{{Type: world.OrderGoto, Dest: "Sundingburg"}},
		X:      102, Y: 202})
	w.AddVehicle(&world.Vehicle{Type: world.VehShip, Owner: 1,
		MaxSpeed: 40, CurSpeed: 32, AgeDays: 6 * 365, MaxAgeDays: 30 * 365,
		ServiceInterval: 360, Reliability: 95,
		ProfitThisYear: 30000, ProfitLastYear: 28000,
		Orders: []world.Order{{Type: world.OrderGoto, Dest: "docks"}, {Type: world.OrderLoading, Dest: "oil rig"}},
		X:      400, Y: 400})
	w.AddVehicle(&world.Vehicle{Type: world.VehAircraft, Owner: 1,
		MaxSpeed: 480, CurSpeed: 440, AgeDays: 2 * 365, MaxAgeDays: 18 * 365,
		ServiceInterval: 60, Reliability: 98,
		ProfitThisYear: 52000, ProfitLastYear: 47000,
		Orders: []world.Order{{Type: world.OrderGoto, Dest: "Flanfingway airport"}, {Type: world.OrderGoto, Dest: "Sundingburg airstrip"}},
		X:      200, Y: 150, Z: 40})
	w.AddVehicle(&world.Vehicle{Type: world.VehTrain, Owner: 2,
		MaxSpeed: 120, CurSpeed: 100, AgeDays: 4 * 365, MaxAgeDays: 20 * 365,
		ServiceInterval: 150, Reliability: 90,
		Wagons: []world.Wagon{{Engine: true, MaxSpeed: 120}},
		X:      320, Y: 60})
}

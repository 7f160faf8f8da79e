package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mudmap/pkg/cli"
	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
	"mudmap/pkg/route"
	"mudmap/pkg/server"
	"mudmap/pkg/viewer"
)

func initGettext() {
	gotext.Configure("po", "en_US", "default")
}

func main() {
	dataPath := flag.String("data", "data/areas.json", "area dataset file")
	colorsPath := flag.String("colors", "data/colors.json", "environment color table file")
	areaID := flag.Int("area", -1, "area id to open (default: first area by name)")
	level := flag.Int("level", 0, "level to open")
	listAreas := flag.Bool("areas", false, "list areas and exit")
	serveAddr := flag.String("serve", "", "run the JSON API on this address instead of the viewer")
	fragmentRoom := flag.Int("fragment", -1, "write an SVG fragment around this room id and exit")
	padding := flag.Float64("padding", 10, "fragment neighborhood size in grid units")
	out := flag.String("out", "", "fragment output file (default: stdout)")
	routeSpec := flag.String("route", "", "print the shortest route between two room ids, as FROM:TO")
	fontPath := flag.String("font", "", "TTF font for map text (overrides the saved setting)")
	flag.Parse()

	initGettext()
	cli.InitColors()

	settings := config.Load()
	if *fontPath != "" {
		settings.FontPath = *fontPath
	}

	idx, err := mapdata.LoadDataset(*dataPath, *colorsPath)
	if err != nil {
		log.Fatalf("loading dataset: %v", err)
	}

	switch {
	case *listAreas:
		cli.PrintAreas(idx)
	case *routeSpec != "":
		runRoute(idx, *routeSpec)
	case *fragmentRoom >= 0:
		runFragment(idx, settings, *fragmentRoom, *padding, *out)
	case *serveAddr != "":
		graph := route.Build(idx)
		srv := server.New(idx, graph, settings)
		log.Fatal(srv.ListenAndServe(*serveAddr))
	default:
		runViewer(idx, settings, *areaID, *level)
	}
}

// runRoute answers a shortest-path query on the terminal.
func runRoute(idx *mapdata.AreaIndex, spec string) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		log.Fatalf("bad -route value %q, want FROM:TO", spec)
	}
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		log.Fatalf("bad -route value %q: %v", spec, err)
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil {
		log.Fatalf("bad -route value %q: %v", spec, err)
	}

	graph := route.Build(idx)
	path, ok := graph.ShortestPath(from, to)
	if !ok {
		cli.PrintNoRoute(from, to)
		os.Exit(1)
	}
	cli.PrintRoute(idx, path)
}

// runFragment writes the SVG neighborhood of one room.
func runFragment(idx *mapdata.AreaIndex, settings config.Settings, roomID int, padding float64, out string) {
	builder := render.NewBuilder(idx, settings)
	svg, err := server.Fragment(idx, builder, roomID, padding)
	if err != nil {
		log.Fatalf("fragment: %v", err)
	}

	if out == "" {
		fmt.Print(svg)
		return
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		log.Fatalf("writing %s: %v", out, err)
	}
	log.Printf("wrote %s", out)
}

// runViewer opens the interactive window.
func runViewer(idx *mapdata.AreaIndex, settings config.Settings, areaID, level int) {
	if areaID < 0 {
		areas := idx.Areas()
		if len(areas) == 0 {
			log.Fatal("dataset has no areas")
		}
		areaID = areas[0].ID
	}

	app, err := viewer.New(idx, settings)
	if err != nil {
		log.Fatalf("starting viewer: %v", err)
	}
	if err := app.ShowArea(areaID, level); err != nil {
		log.Fatalf("opening area %d: %v", areaID, err)
	}

	// Drain viewer events; the window acts on them itself, the log keeps a
	// trace for debugging.
	go func() {
		for ev := range app.Events() {
			switch ev.Kind {
			case viewer.EventRoomSelected:
				log.Printf("selected room %d (%s)", ev.Room.ID, ev.Room.Name)
			case viewer.EventAreaNavigation:
				log.Printf("navigating to area %d level %d (room %d)", ev.AreaID, ev.Level, ev.RoomID)
			}
		}
	}()

	if err := app.Run(gotext.Get("World Map")); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}

// Command bench drives a scenario file's start/goal pairs against the
// three search engines (Dijkstra, A* with the octile heuristic, and jump
// point search) over a single map file, and reports per-run timing,
// expansion counts, and path cost for each.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/expand"
	"github.com/katalvlaran/bitpath/heuristic"
	"github.com/katalvlaran/bitpath/mapfile"
	"github.com/katalvlaran/bitpath/pool"
	"github.com/katalvlaran/bitpath/region"
	"github.com/katalvlaran/bitpath/scenario"
	"github.com/katalvlaran/bitpath/search"
)

func main() {
	mapPath := flag.String("map", "", "path to an obstacle map file (type octile format)")
	scenarioPath := flag.String("scenario", "", "path to a scenario file")
	flag.Parse()

	if *mapPath == "" || *scenarioPath == "" {
		log.Fatal("bench: both -map and -scenario are required")
	}

	if err := run(*mapPath, *scenarioPath); err != nil {
		log.Fatalf("bench: %v", err)
	}
}

func run(mapPath, scenarioPath string) error {
	mapFile, err := os.Open(mapPath)
	if err != nil {
		return fmt.Errorf("open map: %w", err)
	}
	defer mapFile.Close()

	grid, err := mapfile.Parse(mapFile)
	if err != nil {
		return fmt.Errorf("parse map: %w", err)
	}

	scenFile, err := os.Open(scenarioPath)
	if err != nil {
		return fmt.Errorf("open scenario: %w", err)
	}
	defer scenFile.Close()

	records, err := scenario.Parse(scenFile)
	if err != nil {
		return fmt.Errorf("parse scenario: %w", err)
	}

	transpose := grid.Transpose()
	jps, err := expand.NewJPS(grid, transpose)
	if err != nil {
		return fmt.Errorf("construct jps: %w", err)
	}
	noCorner := expand.NewNoCornerCutting(grid)

	for i, rec := range records {
		log.Printf("scenario %d: %s start=%v goal=%v expected=%.6f", i, rec.MapName, rec.Start, rec.Goal, rec.ExpectedLength)

		if !region.Reachable(grid, rec.Start, rec.Goal) {
			log.Printf("  unreachable per region precheck, skipping engines")
			continue
		}

		runEngine(grid, "dijkstra", noCorner, search.ZeroHeuristic[bitgrid.Cell], rec.Start, rec.Goal)
		runEngine(grid, "astar-octile", noCorner, heuristic.Octile(rec.Goal), rec.Start, rec.Goal)

		jps.SetGoal(rec.Goal)
		runEngine(grid, "jps", jps, heuristic.Octile(rec.Goal), rec.Start, rec.Goal)
	}
	return nil
}

func runEngine(grid *bitgrid.Grid, name string, policy search.ExpansionPolicy[bitgrid.Cell], h search.Heuristic[bitgrid.Cell], source, goal bitgrid.Cell) {
	engine := search.NewEngine[bitgrid.Cell](pool.NewGridPool(grid.Width(), grid.Height()))

	start := time.Now()
	result := engine.Search(policy, h, source, goal)
	elapsed := time.Since(start)

	if !result.Found {
		log.Printf("  %-13s unreachable (%d expansions, %v)", name, result.Expansions, elapsed)
		return
	}
	log.Printf("  %-13s cost=%.6f expansions=%d elapsed=%v", name, result.Cost, result.Expansions, elapsed)
}

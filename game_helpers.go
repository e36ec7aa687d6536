package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/seed"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles everything the main loop drives
type game struct {
	config   utils.Config
	engine   *model.Engine
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	cycles   *utils.CycleDetector
	rng      *rand.Rand
	seed     int64
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	engine, err := model.NewEngine(config.Width, config.Height, config.Wrap, model.WithWorkers(config.Workers))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	s := config.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		engine:   engine,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		cycles:   utils.NewCycleDetector(config.HistorySize),
		rng:      rand.New(rand.NewPCG(uint64(s), 0)),
		seed:     s,
	}
	if err = g.populate(); err != nil {
		return nil, err
	}
	return g, nil
}

// populate seeds the engine according to the configured seed mode
func (g *game) populate() error {
	var (
		live []model.Coord
		err  error
	)
	switch g.config.SeedMode {
	case utils.SeedModeNoise:
		// Each restart draws a fresh noise field
		live, err = seed.Noise(g.config.Width, g.config.Height, g.config.NoiseScale, g.config.NoiseThreshold, g.rng.Int64())
	default:
		live, err = seed.Random(g.config.Width, g.config.Height, g.config.RandomDensity, g.rng)
	}
	if err != nil {
		return errors.Wrap(err, "[populate]")
	}
	return errors.Wrap(g.engine.SetAlive(live...), "[populate]")
}

// restart clears the grid and reseeds it
func (g *game) restart() error {
	g.engine.Clear()
	g.cycles.Reset()
	return g.populate()
}

// injectRandomLife adds a few random cells to break stagnation
func (g *game) injectRandomLife() error {
	live := seed.Scatter(g.config.Width, g.config.Height, g.config.InjectionCount, g.rng)
	return errors.Wrap(g.engine.SetAlive(live...), "[injectRandomLife]")
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	mode := "bounded"
	if g.engine.WrapMode() {
		mode = "toroidal"
	}
	fmt.Printf("Grid: %dx%d (%s) | Workers: %d | Seed: %d (%s)\n",
		g.engine.Width(), g.engine.Height(), mode, g.engine.Workers(), g.seed, g.config.SeedMode)
	fmt.Printf("Initial living cells: %d\n", g.engine.Front().Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns its status and repeat period
func updateGameState(g *game, generation int, frameDuration time.Duration) (string, int) {
	front := g.engine.Front()
	g.stats.Update(generation, front.Population(), front.Width()*front.Height(), frameDuration)

	period := g.cycles.Observe(front.Hash())

	status := "Active"
	switch {
	case g.stats.Population == 0:
		status = "Extinct"
	case period == 1:
		status = "Still life"
	case period > 1:
		status = fmt.Sprintf("Oscillating (period %d)", period)
	}
	return status, period
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, status string, lastRestartGen int) {
	s := g.stats
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		s.TotalGenerations, s.Population, s.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		s.GenerationsPerSecond, s.AveragePopulation, s.Runtime().Seconds())

	if s.TotalGenerations > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", s.TotalGenerations-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// shouldInject reports whether a stagnating board should get random cells before a restart is due
func shouldInject(stagnantCount int, config utils.Config) bool {
	return config.InjectionCount > 0 && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if os.IsNotExist(errors.Cause(err)) {
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config, err = utils.DefaultConfig(), nil
	}
	if err != nil {
		fmt.Printf("Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	g, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error initializing game: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(g)
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err = run(g, sigChan); err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
}

// run drives the engine until the generation limit or a signal
func run(g *game, sigChan <-chan os.Signal) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		ticker         = time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			shutdown(g, generation)
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		g.renderer.Clear()

		status, period := updateGameState(g, generation, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if period > 0 {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, status, lastRestartGen)
		if err := g.renderer.Display(g.engine.Front()); err != nil {
			return err
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(g.stats.Population, stagnantCount, g.config)
		switch {
		case shouldRestart && g.config.AutoRestart:
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			if err := g.restart(); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		case shouldInject(stagnantCount, g.config):
			if err := g.injectRandomLife(); err != nil {
				return err
			}
		}

		g.engine.Step()
		generation++

		select {
		case <-sigChan:
			shutdown(g, generation)
			return nil
		case <-ticker.C:
		}
	}
}

func shutdown(g *game, generation int) {
	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

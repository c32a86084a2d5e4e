package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Readm/csma_slotsim/core"
	"github.com/Readm/csma_slotsim/hooks"
	"github.com/Readm/csma_slotsim/plugins/exporter"
	"github.com/Readm/csma_slotsim/plugins/report"
	"github.com/Readm/csma_slotsim/plugins/visualization"
	"github.com/Readm/csma_slotsim/visual"
)

func main() {
	headless := flag.Bool("headless", true, "Run headless (print stats and exit) instead of serving the web replay")
	benchmark := flag.Bool("benchmark", false, "Run the performance benchmark suite and exit")
	configName := flag.String("config", "multi_node_default", "Predefined configuration name")
	addr := flag.String("addr", ":8080", "HTTP listen address for web mode")
	exportLog := flag.Bool("export-log", false, "Enable the jsonlines log exporter plugin, writing to stdout")
	reportEvery := flag.Int("report-every", 0, "Enable the console reporter plugin, printing every N ticks")
	consoleVisualizer := flag.Bool("console-visualizer", false, "Enable the console visualization plugin, printing every replayed frame (web mode only)")
	randomSeed := flag.Bool("random-seed", false, "Seed the run from the current time instead of the preset's fixed Seed")
	flag.Parse()

	if *benchmark {
		RunBenchmarkSuite()
		return
	}

	cfg := GetConfigByName(*configName)
	if cfg == nil {
		fmt.Fprintf(os.Stderr, "unknown config %q\n", *configName)
		os.Exit(1)
	}
	if err := ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config %q: %v\n", *configName, err)
		os.Exit(1)
	}
	if *randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	registry := hooks.NewRegistry(nil)
	if *exportLog {
		if err := exporter.Register(registry, exporter.Options{Writer: os.Stdout}); err != nil {
			GetLogger().Warnf("could not register log exporter: %v", err)
		} else if err := registry.Load([]string{"exporter/jsonlines"}); err != nil {
			GetLogger().Warnf("could not activate log exporter: %v", err)
		}
	}
	if *reportEvery > 0 {
		if err := report.Register(registry, report.Options{Writer: os.Stdout, Every: *reportEvery}); err != nil {
			GetLogger().Warnf("could not register console reporter: %v", err)
		} else if err := registry.Load([]string{"report/console"}); err != nil {
			GetLogger().Warnf("could not activate console reporter: %v", err)
		}
	}

	if *headless {
		rng := rand.New(rand.NewSource(cfg.Seed))
		result := core.Simulate(*cfg, rng, registry.Broker())
		PrintStats(&result.Stats)
		return
	}

	ws := NewWebServer(*addr, registry.Broker())
	if *consoleVisualizer {
		err := visualization.Register(registry, visualization.Options{
			Factories: map[string]visualization.Factory{
				"console": func() (visual.Visualizer, error) {
					return visualization.NewConsoleVisualizer(os.Stdout), nil
				},
			},
			SetVisualizer: ws.player.SetVisualizer,
		})
		if err != nil {
			GetLogger().Warnf("could not register console visualizer: %v", err)
		} else if err := registry.Load([]string{"visualization/console"}); err != nil {
			GetLogger().Warnf("could not activate console visualizer: %v", err)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	result := core.Simulate(*cfg, rng, registry.Broker())
	ws.setResult(&result)

	if err := ws.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "web server failed to start: %v\n", err)
		os.Exit(1)
	}
	GetLogger().Infof("serving replay on %s", *addr)
	select {}
}

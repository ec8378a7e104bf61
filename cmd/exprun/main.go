package main

import (
	"fmt"
	"os"

	"github.com/expkit/exprun/internal/config"
	"github.com/expkit/exprun/internal/logger"
	"github.com/expkit/exprun/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("exprun")

	selection, err := config.GetBaseSelection()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading base configuration selection")
	}

	registry := config.DefaultRegistry()
	prototype, err := config.SelectBase(registry, selection.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("error selecting base configuration")
	}

	overrides, err := config.GetOverrides(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error collecting overrides")
	}

	resolver := config.Resolver{AllowVariantSwitch: overrides.AllowOptimizerSwitch}
	cfg, err := resolver.Resolve(prototype, overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving experiment configuration")
	}

	runID := utils.NewRunIDGenerator().Generate()
	log.Debug().
		Str("run_id", runID).
		Str("base_config", selection.Name).
		Any("config", cfg).
		Msg("resolved experiment configuration")

	rendered, err := cfg.YAML()
	if err != nil {
		log.Fatal().Err(err).Msg("error rendering experiment configuration")
	}

	fmt.Printf("# run %s (base: %s)\n%s", runID, selection.Name, rendered)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

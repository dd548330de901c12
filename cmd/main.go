package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/dlist/internal/config"
	"github.com/povarna/dlist/internal/scenario"
	"github.com/povarna/dlist/internal/setup"
	applog "github.com/povarna/dlist/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Scenario YAML file (defaults to SCENARIO_PATH, else the built-in demo)")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stdout is reserved for rendered lists.
	logOut := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if err := run(ctx, *scenarioPath, os.Stdout, logOut); err != nil {
		log.Fatal().Err(err).Msg("Scenario failed")
	}
}

func run(ctx context.Context, scenarioPath string, stdout io.Writer, logOut io.Writer) error {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	logger := applog.New(cfg.LogLevel, logOut)
	log.Logger = logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	sc, err := loadScenario(scenarioPath, cfg.ScenarioPath)
	if err != nil {
		return err
	}

	deps := setup.Wire(cfg, &logger)
	runner := scenario.NewRunner(deps.Executor, &logger)

	return runner.Run(ctx, sc, stdout)
}

func loadScenario(flagPath, envPath string) (*config.Scenario, error) {
	if flagPath == "" && envPath == "" {
		return config.DefaultScenario(), nil
	}

	return config.LoadScenario(flagPath)
}

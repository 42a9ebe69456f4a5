package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/endowment-irr/internal/calculation"
	"github.com/rpgo/endowment-irr/internal/config"
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/rpgo/endowment-irr/internal/logging"
)

// app carries process state shared by the subcommands.
type app struct {
	cfg       *config.AppConfig
	log       *logrus.Logger
	ratesFile string
	logLevel  string
	debug     bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "policyirr",
		Short: "Benefit projection and IRR for a 16/6 endowment policy",
		Long: `policyirr projects the yearly benefit schedule of a 16-year endowment policy
with 6 annual premiums and computes the internal rate of return for the
surrender and death scenarios.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.ratesFile, "rates", "", "rate tables YAML file (defaults to POLICYIRR_RATES_FILE or the built-in tables)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log the itemized schedule and cashflow timelines")

	root.AddCommand(newProjectCmd(a), newQuoteCmd(a), newRatesCmd(a), newServeCmd(a), newExampleCmd())
	return root
}

// init loads environment settings and sets up logging. Flags override the environment.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	if a.ratesFile == "" {
		a.ratesFile = cfg.RatesFile
	}
	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.debug {
		level = "debug"
	}
	a.cfg = cfg
	a.log = logging.New(logging.Options{
		Level: level,
		JSON:  cfg.IsProduction(),
		Out:   cmd.ErrOrStderr(),
	})
	return nil
}

func (a *app) rateTables() (*domain.RateTables, error) {
	tables, err := config.LoadRateTables(a.ratesFile)
	if err != nil {
		return nil, fmt.Errorf("load rate tables: %w", err)
	}
	return tables, nil
}

func (a *app) engine() (*calculation.CalculationEngine, error) {
	tables, err := a.rateTables()
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngine(tables)
	engine.Debug = a.debug
	engine.SetLogger(logging.NewEngineLogger(a.log, "calculation"))
	return engine, nil
}

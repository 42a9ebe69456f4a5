package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/endowment-irr/internal/config"
	"github.com/rpgo/endowment-irr/internal/output"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		configFile string
		includeTax bool
		format     string
		outFile    string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the yearly benefit schedule and IRRs for a policy",
		Example: `  policyirr project --config policy.yaml
  policyirr project --config policy.yaml --include-tax --format html --output report.html
  policyirr project --config policy.yaml --format all --dir reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return fmt.Errorf("--config is required")
			}
			req, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("include-tax") {
				req.IncludeTaxBenefitInIRR = includeTax
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}
			a.log.WithField("config", configFile).Debug("running projection")
			report := engine.BuildReport(req.Policy, req.IncludeTaxBenefitInIRR)

			switch {
			case format == "all" || outDir != "":
				paths, err := output.GenerateReport(report, format, outDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
				}
				return nil
			case outFile != "":
				if err := output.SaveReport(report, format, outFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outFile)
				return nil
			default:
				data, err := output.Render(report, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "policy input YAML file")
	cmd.Flags().BoolVar(&includeTax, "include-tax", false, "count the premium tax saving as an inflow in both IRRs")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, json, csv, detailed-csv, html, all)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&outDir, "dir", "", "write a timestamped report into this directory")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example policy input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.NewInputParser().CreateExampleRequest()
			if len(args) == 0 {
				data, err := config.MarshalRequest(req)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.SaveRequest(req, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", args[0])
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/endowment-irr/internal/config"
)

func newRatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the active rate tables as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := a.rateTables()
			if err != nil {
				return err
			}
			data, err := config.MarshalRateTables(tables)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

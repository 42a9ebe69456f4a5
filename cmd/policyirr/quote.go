package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/endowment-irr/internal/calculation"
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/rpgo/endowment-irr/internal/output"
)

func newQuoteCmd(a *app) *cobra.Command {
	var sumAssured, premium string
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Derive the annual premium from a sum assured, or the reverse",
		Example: `  policyirr quote --sum-assured 500000
  policyirr quote --premium 99500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var quote calculation.PremiumQuote
			switch {
			case sumAssured != "" && premium == "":
				sa, err := decimal.NewFromString(sumAssured)
				if err != nil {
					return fmt.Errorf("invalid --sum-assured %q: %w", sumAssured, err)
				}
				quote = calculation.QuoteFromSumAssured(sa)
			case premium != "" && sumAssured == "":
				p, err := decimal.NewFromString(premium)
				if err != nil {
					return fmt.Errorf("invalid --premium %q: %w", premium, err)
				}
				quote = calculation.QuoteFromPremium(p)
			default:
				return fmt.Errorf("exactly one of --sum-assured or --premium is required")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sum Assured:     %s\n", output.FormatAmount(quote.SumAssured))
			fmt.Fprintf(out, "Annual Premium:  %s\n", output.FormatAmount(quote.Premium))
			fmt.Fprintf(out, "Total Premium:   %s\n", output.FormatAmount(quote.Premium.Mul(decimal.NewFromInt(domain.PayingYears))))
			if quote.SumAssured.IsZero() || quote.Premium.IsZero() {
				a.log.Warnf("amount is below the product minimum of %s", domain.MinSumAssured.StringFixed(0))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sumAssured, "sum-assured", "", "sum assured to quote a premium for")
	cmd.Flags().StringVar(&premium, "premium", "", "annual premium to quote a sum assured for")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"pricegrip/internal/controller"
	"pricegrip/internal/domain"
	"pricegrip/internal/output"
	"pricegrip/internal/results"
)

func (a *app) newTrendingCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			display := &collectDisplay{}
			ctrl := controller.New(a.client(), results.NewStore(), display,
				controller.WithLogger(a.logger),
				controller.WithTrendingLimit(a.cfg.UISettings.TrendingLimit),
			)
			ctrl.LoadTrendingTerms(cmd.Context())

			if display.trendingMissing {
				return &output.CLIError{
					Summary:    "Trending searches are unavailable",
					Suggestion: "Try again in a moment",
					ExitCode:   output.ExitBackend,
				}
			}

			printer := a.printer()
			terms := display.trending
			if jsonOutput {
				if terms == nil {
					terms = []domain.TrendingTerm{}
				}
				return printer.JSON(terms)
			}

			printer.Header("Trending searches")
			if len(terms) == 0 {
				printer.Info("Nothing is trending right now")
				return nil
			}
			printer.TrendingList(terms)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

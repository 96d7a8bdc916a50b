package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pricegrip/internal/controller"
	"pricegrip/internal/domain"
	"pricegrip/internal/output"
	"pricegrip/internal/results"
)

type searchOptions struct {
	store    string
	minPrice string
	maxPrice string
	sort     string
	json     bool
}

// searchOutput is the --json shape of a search
type searchOutput struct {
	Query      string           `json:"query"`
	Total      int              `json:"total"`
	StoreCount int              `json:"store_count"`
	PriceRange string           `json:"price_range"`
	Stores     []string         `json:"stores"`
	Products   []domain.Product `json:"products"`
}

func (a *app) newSearchCmd() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products and print the results",
		Long: `Search the price database once and print the matching products.

Filters are applied locally to the fetched results, the same way the
interactive filter controls work.

Examples:
  pricegrip search iphone 15
  pricegrip search rtx 4070 --store Amazon
  pricegrip search ps5 --min 20000 --max 30000 --sort price-asc
  pricegrip search airpods --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.store, "store", domain.AllStores, "only show products from this store")
	cmd.Flags().StringVar(&opts.minPrice, "min", "", "minimum price (inclusive)")
	cmd.Flags().StringVar(&opts.maxPrice, "max", "", "maximum price (inclusive)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(domain.SortByTitle), "sort order: title, price-asc or price-desc")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string, opts *searchOptions) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return usageError(controller.EmptyQueryMsg, "Example: pricegrip search iphone 15")
	}
	if domain.ParseSortMode(opts.sort) == domain.SortNone {
		return usageError(
			fmt.Sprintf("Unknown sort order %q", opts.sort),
			"Use one of: title, price-asc, price-desc",
		)
	}

	filter := domain.NewFilterState(opts.store, opts.sort, opts.minPrice, opts.maxPrice)
	display := &collectDisplay{}
	ctrl := controller.New(a.client(), results.NewStore(), display,
		controller.WithLogger(a.logger),
		controller.WithInitialFilter(filter),
	)
	ctrl.OnSearchSubmit(cmd.Context(), query)

	if display.errMessage != "" {
		return &output.CLIError{
			Summary:    "Search failed",
			Detail:     display.errMessage,
			Suggestion: "Check your connection or pass another backend with --base-url",
			ExitCode:   output.ExitBackend,
		}
	}
	if !display.hasPage {
		// cancelled, e.g. by an interrupt
		return cmd.Context().Err()
	}

	page := display.page
	printer := a.printer()
	currency := a.cfg.UISettings.Currency
	if opts.json {
		products := page.Products
		if products == nil {
			products = []domain.Product{}
		}
		return printer.JSON(searchOutput{
			Query:      page.Query,
			Total:      page.Stats.Total,
			StoreCount: page.Stats.StoreCount,
			PriceRange: results.FormatPriceRange(page.Stats),
			Stores:     page.Stores,
			Products:   products,
		})
	}

	printer.Header(fmt.Sprintf("Results for %q", page.Query))
	if len(page.Products) == 0 {
		printer.Warning("No products found")
		printer.Print("%s", printer.Dim("Try adjusting your search terms or filters"))
		return nil
	}
	if err := printer.ProductTable(page, currency); err != nil {
		return err
	}
	printer.Print("")
	printer.Summary(page, currency)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
)

func newQuoteCmd() *cobra.Command {
	var (
		plan    string
		units   int
		domains int
		inboxes int
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price an order against one of the pricing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, ok := pricing.ByName(plan)
			if !ok {
				return fmt.Errorf("unknown --plan %q", plan)
			}
			n := units
			if !cmd.Flags().Changed("units") {
				n = domains
				if table.Unit == "inbox" {
					n = pricing.InboxUnits(domains, inboxes)
				}
			}
			q, err := table.Quote(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %s x %s = %s\n",
				q.Plan, q.Units, table.Unit, pricing.Format(q.UnitPrice), q.Formatted)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", pricing.PlanDomainInboxes, "Pricing table (domain-inboxes, microsoft-inboxes, google-inboxes, domain-slots)")
	cmd.Flags().IntVar(&units, "units", 0, "Unit count; overrides --domains and --inboxes")
	cmd.Flags().IntVar(&domains, "domains", 0, "Number of domains")
	cmd.Flags().IntVar(&inboxes, "inboxes", 1, "Inboxes per domain")
	return cmd
}

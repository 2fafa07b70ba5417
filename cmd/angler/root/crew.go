package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newCrewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Show hired crew and their passive income",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			members, err := svc.CrewRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			income, err := svc.CrewRepo().TotalIncome(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCrew, "Crew"))
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No crew yet."))
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s earns %d gold/s %s\n",
					ui.Key.Render(m.Role), m.IncomePerSecond, ui.Muted.Render("since "+m.HiredAt.Format("2006-01-02")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total income", fmt.Sprintf("%d gold/s", income)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s Next hire costs %s %d and earns %d gold/s\n",
				ui.Muted.Render("→"), ui.IconGold, engine.HireCost(len(members)), engine.HireIncome(len(members)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Hire with: angler crew hire"))

			return nil
		},
	}

	cmd.AddCommand(newCrewHireCmd())

	return cmd
}

func newCrewHireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hire",
		Short: "Hire the next crew member",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			member, cost, err := svc.Hire(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s joins the crew, %d gold/s (%s -%d)\n",
				ui.Good.Render(ui.IconDone+" Hired:"), member.Role, member.IncomePerSecond, ui.IconGold, cost)
			return nil
		},
	}
}

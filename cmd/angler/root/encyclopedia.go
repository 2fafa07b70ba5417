package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newEncyclopediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encyclopedia",
		Aliases: []string{"codex"},
		Short:   "Show every species and which ones you have caught",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			discoveries, err := svc.CodexRepo().ListDiscoveries(ctx)
			if err != nil {
				return err
			}
			seen := make(map[string]bool, len(discoveries))
			for _, d := range discoveries {
				seen[d.Name] = true
			}

			cat := svc.Catalog()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, fmt.Sprintf("Encyclopedia %d/%d", len(seen), cat.Count())))
			for _, tier := range []engine.Rarity{engine.RarityLegendary, engine.RarityEpic, engine.RarityRare, engine.RarityCommon} {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(tier.String()))
				for _, sp := range cat.Tier(tier) {
					if seen[sp.Name] {
						fmt.Fprintf(cmd.OutOrStdout(), "- %s %s  %s %d  %s\n",
							ui.RarityText(tier.String()), ui.Key.Render(sp.Name), ui.IconGold, sp.Value, ui.Muted.Render(sp.Description))
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ui.Muted.Render("???"))
					}
				}
			}

			return nil
		},
	}

	return cmd
}

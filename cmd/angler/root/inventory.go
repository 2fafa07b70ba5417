package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show the fish in your bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := svc.Session(ctx)
			if err != nil {
				return err
			}
			fish, err := svc.InventoryRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			capacity := engine.MaxCapacityFor(sess.BucketLevel)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBucket, fmt.Sprintf("Bucket %d/%d", len(fish), capacity)))
			if len(fish) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty. Go cast a line: angler play"))
				return nil
			}
			for _, f := range fish {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s  %s %d  %s\n",
					ui.RarityText(f.Rarity), ui.Key.Render(f.Name), ui.IconGold, f.Value, ui.Muted.Render(f.ID))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Sell with: angler inventory sell <id>"))

			return nil
		},
	}

	cmd.AddCommand(newInventorySellCmd())

	return cmd
}

func newInventorySellCmd() *cobra.Command {
	var sellAll bool

	cmd := &cobra.Command{
		Use:   "sell <id>",
		Short: "Sell a bucketed fish for gold",
		Args: func(cmd *cobra.Command, args []string) error {
			if sellAll {
				if len(args) != 0 {
					return errors.New("--all takes no fish id")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("fish id is required (see `angler inventory`)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if sellAll {
				fish, err := svc.InventoryRepo().ListAll(ctx)
				if err != nil {
					return err
				}
				if len(fish) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to sell."))
					return nil
				}
				var total int64
				for _, f := range fish {
					credit, err := svc.SellFromInventory(ctx, f.ID)
					if err != nil {
						return err
					}
					total += credit
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d fish, %s +%d\n",
					ui.Good.Render(ui.IconDone+" Sold:"), len(fish), ui.IconGold, total)
				return nil
			}

			credit, err := svc.SellFromInventory(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s +%d\n", ui.Good.Render(ui.IconDone+" Sold:"), ui.IconGold, credit)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sellAll, "all", false, "sell every fish in the bucket")

	return cmd
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy upgrades, food and the VIP pass",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Island Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Gold", fmt.Sprintf("%s %d", ui.IconGold, sess.Money)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🔧 Upgrades"))
			for _, u := range engine.AllUpgrades() {
				level := sessionLevel(sess, u)
				cost := engine.UpgradeCost(u, level)
				affordable := ui.Good.Render("✔")
				if sess.Money < cost {
					affordable = ui.Bad.Render("✘")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s lvl %d → %d for %s %d  %s\n",
					ui.Key.Render(string(u)), level, level+1, ui.IconGold, cost, affordable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🍖 Food"))
			for _, f := range engine.FoodMenu() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s +%d energy for %s %d  %s\n",
					ui.Key.Render(f.ID), f.Energy, ui.IconGold, f.Cost, ui.Muted.Render(f.Description))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if sess.VIP {
				fmt.Fprintln(cmd.OutOrStdout(), ui.BadgeVIP+" "+ui.Muted.Render("pass owned"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s VIP pass for %s %d (permanent +15 to every roll)\n",
					ui.IconCrown, ui.IconGold, engine.VIPCost)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Buy with: angler shop buy <upgrade> | angler shop food <id> | angler shop vip"))

			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd(), newShopFoodCmd(), newShopVIPCmd())

	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <upgrade>",
		Short: "Buy the next level of an upgrade track",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("upgrade name is required (rod, bait, depth, bucket, dock, boat)")
			}
			if !engine.Upgrade(args[0]).IsValid() {
				return fmt.Errorf("unknown upgrade %q", args[0])
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

			res, err := svc.BuyUpgrade(ctx, engine.Upgrade(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now lvl %d (%s -%d)\n",
				ui.Good.Render(ui.IconDone+" Upgraded:"), res.Upgrade, res.NewLevel, ui.IconGold, res.Cost)
			return nil
		},
	}
}

func newShopFoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "food <id>",
		Short: "Eat something to restore energy",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("food id is required (see `angler shop`)")
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

			item, err := svc.BuyFood(ctx, args[0])
			if err != nil {
				return err
			}
			sess, err := svc.Session(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s eaten, %s\n",
				ui.Good.Render(ui.IconBolt), item.Name, ui.Energy(sess.Energy, engine.MaxEnergy))
			return nil
		},
	}
}

func newShopVIPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vip",
		Short: "Buy the permanent VIP pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cost, err := svc.BuyVIP(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s pass unlocked (%s -%d)\n", ui.BadgeVIP, ui.IconGold, cost)
			return nil
		},
	}
}

package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newWardrobeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Show owned characters and their bonuses",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Wardrobe"))
			for _, c := range engine.Characters() {
				owned, err := svc.CodexRepo().HasCharacter(ctx, c.ID)
				if err != nil {
					return err
				}
				tag := ui.Muted.Render(fmt.Sprintf("%s %d", ui.IconGold, c.Cost))
				switch {
				case c.ID == sess.ActiveCharacter:
					tag = ui.Good.Render("worn")
				case owned || c.ID == engine.DefaultCharacterID:
					tag = ui.Key.Render("owned")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s (%s) %s  %s\n",
					ui.Key.Render(c.Name), c.ID, characterBonus(c), tag)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("angler wardrobe buy <id> | angler wardrobe wear <id>"))

			return nil
		},
	}

	cmd.AddCommand(newWardrobeBuyCmd(), newWardrobeWearCmd())

	return cmd
}

func characterBonus(c engine.Character) string {
	switch {
	case c.LuckBonus > 0:
		return ui.Muted.Render(fmt.Sprintf("+%d luck", c.LuckBonus))
	case c.WaitReduction > 0:
		return ui.Muted.Render(fmt.Sprintf("-%dms wait", c.WaitReduction/time.Millisecond))
	case c.ValueMultiplier > 1:
		return ui.Muted.Render(fmt.Sprintf("×%.1f sale value", c.ValueMultiplier))
	default:
		return ui.Muted.Render("no bonus")
	}
}

func newWardrobeBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy a character",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("character id is required (see `angler wardrobe`)")
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

			c, err := svc.BuyCharacter(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s -%d)\n",
				ui.Good.Render(ui.IconDone+" Bought:"), c.Name, ui.IconGold, c.Cost)
			return nil
		},
	}
}

func newWardrobeWearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wear <id>",
		Short: "Wear an owned character",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("character id is required (see `angler wardrobe`)")
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

			if err := svc.WearCharacter(ctx, args[0]); err != nil {
				return err
			}
			c := engine.CharacterByID(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s now wearing %s\n", ui.Good.Render(ui.IconDone), c.Name)
			return nil
		},
	}
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show the quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.EnsureQuestBoard(ctx); err != nil {
				return err
			}
			board, err := svc.QuestRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest Board"))
			for _, q := range board {
				state := ui.ProgressBar(q.Progress, q.Target, 12)
				switch {
				case q.Claimed:
					state = ui.Muted.Render("claimed")
				case engine.Claimable(q.Progress, q.Target, q.Claimed):
					state = ui.Good.Render("ready to claim")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s  %s %d  %s\n",
					ui.Key.Render(q.Description), state, ui.IconGold, q.Reward, ui.Muted.Render(q.ID))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Claim with: angler quests claim <id>"))

			return nil
		},
	}

	cmd.AddCommand(newQuestsClaimCmd())

	return cmd
}

func newQuestsClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim a completed quest's reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			q, err := svc.ClaimQuest(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s +%d)\n",
				ui.Good.Render(ui.IconDone+" Claimed:"), q.Description, ui.IconGold, q.Reward)
			return nil
		},
	}
}

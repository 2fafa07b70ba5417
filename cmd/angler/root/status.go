package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/storage"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show save, gold, energy and gear levels",
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
			netWorth := sess.Money
			for _, f := range fish {
				netWorth += f.Value
			}
			income, err := svc.CrewRepo().TotalIncome(ctx)
			if err != nil {
				return err
			}
			capacity := engine.MaxCapacityFor(sess.BucketLevel)
			character := engine.CharacterByID(sess.ActiveCharacter)

			name := sess.PlayerName
			if sess.VIP {
				name += " " + ui.BadgeVIP
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconAnchor, "Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Angler", name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Gold", fmt.Sprintf("%s %d", ui.IconGold, sess.Money)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Energy", ui.Energy(sess.Energy, engine.MaxEnergy)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Net worth", fmt.Sprintf("%s %d", ui.IconGold, netWorth)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Bucket", fmt.Sprintf("%s %d/%d fish", ui.IconBucket, len(fish), capacity)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Outfit", character.Name))
			if income > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Crew income", fmt.Sprintf("%d gold/s", income)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🎣 Gear"))
			for _, u := range engine.AllUpgrades() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s lvl %d\n", ui.Key.Render(string(u)), sessionLevel(sess, u))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Lifetime"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Fish caught:"), sess.TotalFishCaught)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Legendary:"), sess.LegendaryFishCaught)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Gold earned:"), sess.TotalGoldEarned)

			return nil
		},
	}

	return cmd
}

func sessionLevel(sess *storage.Session, u engine.Upgrade) int {
	switch u {
	case engine.UpgradeRod:
		return sess.RodLevel
	case engine.UpgradeBait:
		return sess.BaitLevel
	case engine.UpgradeDepth:
		return sess.DepthLevel
	case engine.UpgradeBucket:
		return sess.BucketLevel
	case engine.UpgradeDock:
		return sess.DockLevel
	case engine.UpgradeBoat:
		return sess.BoatLevel
	default:
		return 0
	}
}

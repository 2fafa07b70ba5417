package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

const Version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:           "angler",
	Short:         "Nano Angler — a terminal fishing island",
	Long:          "Nano Angler is a local-first terminal fishing game: cast, wait, reel, sell, upgrade, and keep your quest board busy.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newStatusCmd(),
		newShopCmd(),
		newQuestsCmd(),
		newInventoryCmd(),
		newCrewCmd(),
		newWardrobeCmd(),
		newEncyclopediaCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Rahulchina/Fisher-manan/internal/tui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the fishing screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunGame(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}

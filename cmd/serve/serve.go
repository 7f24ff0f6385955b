package serve

import (
	"gacha_calculator/internal/app"

	"github.com/spf13/cobra"
)

// Command запускает HTTP сервер до SIGINT/SIGTERM
func Command(envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(*envPath).Run(cmd.Context())
		},
	}
}

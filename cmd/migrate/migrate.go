package migrate

import (
	"gacha_calculator/internal/app"

	"github.com/spf13/cobra"
)

// Command применяет миграции схемы и выходит
func Command(envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(*envPath).Migrate(cmd.Context())
		},
	}
}

package cmd

import (
	"gacha_calculator/cmd/calc"
	"gacha_calculator/cmd/migrate"
	"gacha_calculator/cmd/serve"

	"github.com/spf13/cobra"
)

const defaultEnvPath = ".env"

// RootCommand корневая команда, без подкоманды запускает сервер
func RootCommand() *cobra.Command {
	var envPath string

	serveCmd := serve.Command(&envPath)

	rootCmd := &cobra.Command{
		Use:          "gacha",
		Short:        "Gacha probability calculator",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&envPath, "env", defaultEnvPath, "Path to the .env file")

	rootCmd.AddCommand(
		serveCmd,
		migrate.Command(&envPath),
		calc.Command(),
	)

	return rootCmd
}

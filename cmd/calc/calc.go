package calc

import (
	"fmt"
	"gacha_calculator/pkg/probability"
	"strconv"

	"github.com/spf13/cobra"
)

// Command считает вероятность без сохранения в историю
func Command() *cobra.Command {
	var (
		percent float64
		times   int
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the chance of at least one success",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := probability.FromPercent(percent)
			if err := probability.Validate(p, times); err != nil {
				return err
			}

			result := probability.ToPercent(probability.Calculate(p, times))
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%%\n", strconv.FormatFloat(result, 'f', -1, 64))
			return err
		},
	}

	cmd.Flags().Float64VarP(&percent, "probability", "p", 0, "Success probability per draw in percent (0-100)")
	cmd.Flags().IntVarP(&times, "times", "n", 0, "Number of draws")
	_ = cmd.MarkFlagRequired("probability")
	_ = cmd.MarkFlagRequired("times")

	return cmd
}

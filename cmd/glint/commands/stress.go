package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/glint/internal/app"
	"go.trai.ch/glint/internal/ui/output"
	"go.trai.ch/glint/internal/ui/style"
)

func (c *CLI) newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Request one type from many goroutines and verify a single descriptor is shared",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, _ := cmd.Flags().GetString("spec")
			workers, _ := cmd.Flags().GetInt("workers")

			result, err := c.app.Stress(cmd.Context(), spec, app.StressOptions{
				ConfigPath: c.configPath,
				JSONLogs:   c.jsonLogs,
				Workers:    workers,
			})
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			line := fmt.Sprintf("%s %d workers, %d descriptor, %d constructed: %s",
				style.Check, result.Workers, result.Distinct, result.Constructions, result.Type)
			_, err = out.WriteString(out.String(line).Foreground(termenv.RGBColor(string(style.Green))).String() + "\n")
			return err
		},
	}
	cmd.Flags().StringP("spec", "s", "highp float", "Type spec to request")
	cmd.Flags().IntP("workers", "w", app.DefaultStressWorkers, "Number of concurrent requests")
	return cmd
}

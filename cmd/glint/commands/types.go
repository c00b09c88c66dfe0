package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glint/internal/app"
)

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types [spec...]",
		Short: "Intern type specs and print their keys and mangled names",
		Long: `Intern each type spec and print one line per spec:
the packed key, the mangled name and the type.

A spec is written as "[precision] [qualifier] typename", for example
"highp float", "mediump in vec4" or "uniform mat3x2".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigPath: c.configPath,
				JSONLogs:   c.jsonLogs,
				Out:        cmd.OutOrStdout(),
			})
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/macfix/internal/app"
)

func newScanCommand(container *app.Container, renderer *Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run the quick system scan without applying fixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.Scanner.Run(cmd.Context())
			renderer.Report(report)
			return nil
		},
	}
}

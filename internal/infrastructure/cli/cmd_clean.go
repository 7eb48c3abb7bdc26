package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/macfix/internal/app"
	"github.com/doeshing/macfix/internal/domain"
)

func newCleanCommand(container *app.Container, renderer *Renderer) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clear caches and restart UI processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes {
				container.Dispatcher.ConfirmDestructive = false
			}
			outcome := container.Dispatcher.Execute(cmd.Context(), domain.ActionCleanSystem)
			renderer.Outcome(outcome)
			if outcome.Status == domain.OutcomeError {
				return fmt.Errorf("clean failed: %s", outcome.Detail)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

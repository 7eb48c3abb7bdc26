package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/macfix/internal/app"
	"github.com/doeshing/macfix/internal/domain"
)

func newAllCommand(container *app.Container, renderer *Renderer) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run a full scan and apply every recommended fix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes {
				container.Dispatcher.ConfirmDestructive = false
			}
			result := container.Batch.RunAll(cmd.Context())
			renderer.Report(result.Report)
			if len(result.Outcomes) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\nApplying fixes:")
			}
			for _, o := range result.Outcomes {
				renderer.Outcome(o)
			}
			// Every step already ran; only now does a hard failure
			// surface as a non-zero exit.
			if result.Failed() {
				return fmt.Errorf("%d of %d fixes failed", countErrors(result.Outcomes), len(result.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts for disruptive fixes")
	return cmd
}

func countErrors(outcomes []domain.Outcome) int {
	count := 0
	for _, o := range outcomes {
		if o.Status == domain.OutcomeError {
			count++
		}
	}
	return count
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/macfix/internal/app"
	"github.com/doeshing/macfix/internal/domain"
)

func newNetworkCommand(container *app.Container, renderer *Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Flush DNS and renew DHCP leases",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := container.Batch.RunSequence(cmd.Context(),
				domain.ActionFlushDNS, domain.ActionRenewDHCP)
			for _, o := range result.Outcomes {
				renderer.Outcome(o)
			}
			if result.Failed() {
				return fmt.Errorf("network fixes failed")
			}
			return nil
		},
	}
}

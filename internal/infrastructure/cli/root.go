package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/macfix/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Without a recognized subcommand
// the process enters the interactive menu (when attached to a terminal).
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	// The menu loop and the confirmation prompter share one buffered
	// reader so neither swallows input meant for the other.
	stdin := bufio.NewReader(os.Stdin)
	container.Dispatcher.Prompter = NewPrompter(stdin, os.Stdout)

	verbose := opts.Verbose || container.Config.Logging.Verbose
	renderer := NewRenderer(os.Stdout, verbose, actionTitles(container.Dispatcher))

	root := &cobra.Command{
		Use:   "macfix [all|network|clean]",
		Short: "macfix - macOS IT support toolkit",
		Long: "macfix automates common macOS support tasks: flushing DNS, renewing DHCP\n" +
			"leases, clearing caches, restarting UI processes and running health scans.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) {
				return cmd.Help()
			}
			menu := NewMenu(container, renderer, stdin, os.Stdout)
			return menu.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAllCommand(container, renderer))
	root.AddCommand(newNetworkCommand(container, renderer))
	root.AddCommand(newCleanCommand(container, renderer))
	root.AddCommand(newScanCommand(container, renderer))
	root.AddCommand(newHistoryCommand(container))
	return root, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDisableCmd() *cobra.Command {
	var clientFlag string

	cmd := &cobra.Command{
		Use:   "disable <server>",
		Short: "Disable a server for a client",
		Long: `Removes a server from a client's enabled list and from the client's
native config file. Without --client the active client is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server := args[0]
			mgr, _, err := newManager()
			if err != nil {
				return err
			}

			clientName := resolveClient(mgr, clientFlag)
			changed, err := mgr.DisableServerForClient(server, clientName)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Printf("Server %q was not enabled for %s.\n", server, clientName)
				return nil
			}
			fmt.Printf("Disabled %q for %s\n", server, clientName)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientFlag, "client", "", "target client (default: active client)")
	return cmd
}

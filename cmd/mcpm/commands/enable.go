package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnableCmd() *cobra.Command {
	var clientFlag string

	cmd := &cobra.Command{
		Use:   "enable <server>",
		Short: "Enable a server for a client",
		Long: `Adds a server to a client's enabled list. Without --client the active
client is used. Enabling an already enabled server is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server := args[0]
			mgr, _, err := newManager()
			if err != nil {
				return err
			}

			clientName := resolveClient(mgr, clientFlag)
			if _, ok := mgr.ServerInfo(server); !ok {
				fmt.Printf("Warning: server %q is not registered with mcpm.\n", server)
			}
			if err := mgr.EnableServerForClient(server, clientName); err != nil {
				return err
			}
			fmt.Printf("Enabled %q for %s\n", server, clientName)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientFlag, "client", "", "target client (default: active client)")
	return cmd
}

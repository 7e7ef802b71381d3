package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Unregister an MCP server",
		Long:  "Removes a server from the mcpm config and from every client's enabled list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			mgr, _, err := newManager()
			if err != nil {
				return err
			}
			if _, ok := mgr.ServerInfo(name); !ok {
				fmt.Printf("Server %q is not registered.\n", name)
				return nil
			}
			if err := mgr.UnregisterServer(name); err != nil {
				return err
			}
			fmt.Printf("Unregistered server %q\n", name)
			return nil
		},
	}
}

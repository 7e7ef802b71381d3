package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Show and select the active MCP client",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newManager()
			if err != nil {
				return err
			}

			active := mgr.ActiveClient()
			fmt.Printf("Active client: %s\n\n", active)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINSTALLED\tENABLED SERVERS")
			for _, name := range mgr.SupportedClients() {
				installed := color.RedString("no")
				if entry, ok := mgr.Config().Clients[name]; ok && entry.Installed {
					installed = color.GreenString("yes")
				}
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s\t%s\t%d\n", marker, name, installed, len(mgr.ClientServers(name)))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(newClientSetCmd())
	return cmd
}

func newClientSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Set the active client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newManager()
			if err != nil {
				return err
			}
			if err := mgr.SetActiveClient(args[0]); err != nil {
				return err
			}
			fmt.Printf("Active client set to %s\n", args[0])
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/mcpm-sh/mcpm/internal/config"
	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	var clientFlag string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List registered servers, or a client's enabled servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newManager()
			if err != nil {
				return err
			}

			if clientFlag != "" {
				enabled := mgr.ClientServers(clientFlag)
				if len(enabled) == 0 {
					fmt.Printf("No servers enabled for %s.\n", clientFlag)
					return nil
				}
				fmt.Printf("Servers enabled for %s (in enable order):\n", clientFlag)
				for _, name := range enabled {
					fmt.Printf("  %s\n", name)
				}
				return nil
			}

			servers := mgr.AllServers()
			if len(servers) == 0 {
				fmt.Println("No servers registered. Run 'mcpm add' to register one.")
				return nil
			}

			names := make([]string, 0, len(servers))
			for name := range servers {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOMMAND\tENABLED FOR")
			for _, name := range names {
				command := "-"
				if c, ok := servers[name]["command"].(string); ok && c != "" {
					command = c
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, command, enabledFor(mgr, name))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&clientFlag, "client", "", "list servers enabled for this client")
	return cmd
}

// enabledFor summarizes which clients have a server enabled.
func enabledFor(mgr *config.Manager, server string) string {
	out := ""
	for _, clientName := range mgr.SupportedClients() {
		for _, s := range mgr.ClientServers(clientName) {
			if s == server {
				if out != "" {
					out += ", "
				}
				out += clientName
			}
		}
	}
	if out == "" {
		return "-"
	}
	return out
}

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show config summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newManager()
			if err != nil {
				return err
			}
			cfg := mgr.Config()

			enabled := 0
			for _, entry := range cfg.Clients {
				enabled += len(entry.EnabledServers)
			}
			installed := 0
			for _, entry := range cfg.Clients {
				if entry.Installed {
					installed++
				}
			}

			fmt.Println()
			fmt.Println("  mcpm status")
			fmt.Println("  ────────────────────────────────────────")
			fmt.Printf("  Config:         %s\n", mgr.Path())
			fmt.Printf("  Version:        %s\n", cfg.Version)
			fmt.Printf("  Active client:  %s\n", color.CyanString(mgr.ActiveClient()))
			fmt.Printf("  Servers:        %d registered\n", len(cfg.Servers))
			fmt.Printf("  Clients:        %d known, %d installed\n", len(cfg.Clients), installed)
			fmt.Printf("  Enablements:    %d\n", enabled)
			fmt.Println()
			return nil
		},
	}
}

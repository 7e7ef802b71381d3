package commands

import (
	"log/slog"
	"os"

	"github.com/mcpm-sh/mcpm/internal/client"
	"github.com/mcpm-sh/mcpm/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcpm",
		Short: "Manage MCP servers across AI clients",
		Long:  "MCPM — register MCP servers once and enable or disable them per client (Claude Desktop, Cursor, Windsurf, Cline, Continue, 5ire, Goose).",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")

	root.AddCommand(
		newClientCmd(),
		newLsCmd(),
		newAddCmd(),
		newRmCmd(),
		newEnableCmd(),
		newDisableCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newManager builds the config manager every command works through,
// along with the client registry it was constructed with.
func newManager() (*config.Manager, *client.Registry, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	registry := client.DefaultRegistry()
	mgr, err := config.NewManager(cfgFile, registry, logger)
	if err != nil {
		return nil, nil, err
	}
	return mgr, registry, nil
}

// resolveClient picks the client a command targets: the --client flag
// when given, the active client otherwise.
func resolveClient(mgr *config.Manager, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return mgr.ActiveClient()
}

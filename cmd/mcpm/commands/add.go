package commands

import (
	"fmt"
	"strings"

	"github.com/mcpm-sh/mcpm/internal/client"
	"github.com/mcpm-sh/mcpm/internal/config"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		command    string
		cmdArgs    []string
		envPairs   []string
		clientFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register an MCP server",
		Long: `Register an MCP server in the mcpm config. With --client the server
definition is also written into that client's native config and enabled.`,
		Example: `  mcpm add fetch --command uvx --args mcp-server-fetch
  mcpm add github --command npx --args -y,@modelcontextprotocol/server-github --env GITHUB_TOKEN=... --client cursor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			env, err := parseEnv(envPairs)
			if err != nil {
				return err
			}

			mgr, registry, err := newManager()
			if err != nil {
				return err
			}

			info := config.ServerInfo{"command": command}
			if len(cmdArgs) > 0 {
				info["args"] = cmdArgs
			}
			if len(env) > 0 {
				info["env"] = env
			}
			if err := mgr.RegisterServer(name, info); err != nil {
				return err
			}
			fmt.Printf("Registered server %q\n", name)

			if clientFlag == "" {
				return nil
			}

			cm, ok := registry.Get(clientFlag)
			if !ok {
				return fmt.Errorf("unsupported client %q", clientFlag)
			}
			if err := cm.AddServer(name, client.ServerConfig{Command: command, Args: cmdArgs, Env: env}); err != nil {
				return fmt.Errorf("writing %s config: %w", clientFlag, err)
			}
			if err := mgr.EnableServerForClient(name, clientFlag); err != nil {
				return err
			}
			fmt.Printf("Enabled %q for %s (%s)\n", name, clientFlag, cm.ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&command, "command", "", "command that launches the server")
	cmd.Flags().StringSliceVar(&cmdArgs, "args", nil, "arguments for the server command")
	cmd.Flags().StringSliceVar(&envPairs, "env", nil, "environment variables as KEY=VALUE")
	cmd.Flags().StringVar(&clientFlag, "client", "", "also install into this client's native config")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}

// parseEnv turns KEY=VALUE pairs into a map.
func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env pair %q: expected KEY=VALUE", p)
		}
		env[key] = value
	}
	return env, nil
}

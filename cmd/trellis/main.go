package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellis-fw/trellis/internal/cli/commands"
	"github.com/trellis-fw/trellis/internal/cli/config"
	"github.com/trellis-fw/trellis/runtime/reflection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "trellis",
		Short: "Trellis web framework tooling",
		Long: `Trellis is a composition framework for web applications. Classes declare
their routes, middleware, and dependencies through registration functions;
the runtime registry collects that configuration and the framework acts on
it at startup.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewIntrospectCommand(
		reflection.Default(),
		os.Stdout,
		commands.IntrospectOptions{
			Format:  cfg.Introspect.Format,
			NoColor: cfg.Introspect.NoColor,
		},
	))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

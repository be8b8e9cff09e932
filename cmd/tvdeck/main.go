package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/tvdeck/internal/app"
	"github.com/five82/tvdeck/internal/bridge"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tvdeck: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "tvdeck",
		Short:         "Remote-driven TV launcher dashboard for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/tvdeck/config.toml)")
	flags.StringVar(&opts.CatalogPath, "catalog", "", "catalog file path, overrides catalog_path")
	flags.StringVar(&opts.BridgeKind, "bridge", "", `launch bridge: "http", "adb" or "none"`)
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/tvdeck/prefs.toml)")

	root.AddCommand(newCatalogCmd(&opts), newOpenCmd(&opts))
	return root
}

func newCatalogCmd(opts *app.Options) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect dashboard content",
	}
	catalogCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective catalog as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := app.DumpCatalog(*opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return catalogCmd
}

func newOpenCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "open <app-id>",
		Short: "Launch a catalog app through the bridge without the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.LogOutput = cmd.ErrOrStderr()
			outcome, err := app.Launch(cmd.Context(), o, args[0])
			if err != nil {
				return err
			}
			return reportOutcome(cmd.OutOrStdout(), args[0], outcome)
		},
	}
}

func reportOutcome(w io.Writer, id string, outcome bridge.Outcome) error {
	if outcome != bridge.Launched {
		return fmt.Errorf("open %s: %s", id, outcome)
	}
	_, err := fmt.Fprintf(w, "opened %s\n", id)
	return err
}

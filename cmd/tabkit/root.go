package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/internal/config"
	"github.com/jask/tabkit/teatabs"
)

type rootOptions struct {
	configPath string
	prefix     string

	cfg     config.Config
	logger  *slog.Logger
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "tabkit",
		Short:         "Render tab widgets from slot files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logFile != nil {
				return opts.logFile.Close()
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/tabkit/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.prefix, "prefix", "", `slot key convention: "dot" (tab.x) or "dash" (tab-x); defaults per command`)

	cmd.AddCommand(newTUICmd(opts), newServeCmd(opts), newCheckCmd(opts), newConfigCmd(opts))
	return cmd
}

// prefixes resolves --prefix, falling back to the binding's convention.
func (o *rootOptions) prefixes(fallback core.Prefixes) (core.Prefixes, error) {
	switch o.prefix {
	case "":
		return fallback, nil
	case "dot":
		return core.DotPrefixes, nil
	case "dash":
		return core.DashPrefixes, nil
	default:
		return core.Prefixes{}, fmt.Errorf("--prefix %q: want dot or dash", o.prefix)
	}
}

// keyMap builds the terminal key map from the configured key actions.
func (o *rootOptions) keyMap() teatabs.KeyMap {
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), o.cfg.Keys)
	return teatabs.KeyMapFromRegistry(core.NewKeyRegistry(bindings))
}

// setupLogger builds the slog logger. When toTerminal is set and no log
// file is configured, logs are discarded so they do not corrupt the UI.
func (o *rootOptions) setupLogger(toTerminal bool) error {
	var out io.Writer = os.Stderr
	switch {
	case o.cfg.Log.File != "":
		f, err := os.OpenFile(o.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		o.logFile = f
	case toTerminal:
		o.logger = slog.New(slog.DiscardHandler)
		return nil
	}
	o.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: o.cfg.Log.SlogLevel()}))
	return nil
}

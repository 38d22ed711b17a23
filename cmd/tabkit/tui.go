package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/internal/slotfile"
	"github.com/jask/tabkit/teatabs"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui FILE",
		Short: "Show a slot file as terminal tabs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setupLogger(true); err != nil {
				return err
			}
			f, err := slotfile.Load(args[0])
			if err != nil {
				return err
			}
			prefixes, err := opts.prefixes(core.DotPrefixes)
			if err != nil {
				return err
			}
			policy, err := opts.cfg.UI.UnmatchedPolicy()
			if err != nil {
				return err
			}
			store := f.SharedStore
			if store == "" {
				store = opts.cfg.UI.SharedStore
			}

			tabs := teatabs.New(f.Slots,
				teatabs.WithPrefixes(prefixes),
				teatabs.WithPolicy(policy),
				teatabs.WithSharedStore(store),
				teatabs.WithKeyMap(opts.keyMap()),
				teatabs.WithLogger(opts.logger),
				teatabs.WithSize(opts.cfg.UI.Width, opts.cfg.UI.Height-1),
			)
			defer tabs.Close()

			opts.logger.Info("starting tui", "file", args[0], "tabs", len(tabs.Slots().Tabs), "panels", len(tabs.Slots().Panels))
			p := tea.NewProgram(newApp(tabs), tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}
}

var quitKey = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

// app hosts the tab widget with a help line and a quit key.
type app struct {
	tabs *teatabs.Model
	help help.Model
}

func newApp(tabs *teatabs.Model) app {
	return app{tabs: tabs, help: help.New()}
}

func (a app) Init() tea.Cmd { return a.tabs.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		_, cmd := a.tabs.Update(tea.WindowSizeMsg{Width: msg.Width, Height: max(1, msg.Height-1)})
		return a, cmd
	}
	_, cmd := a.tabs.Update(msg)
	return a, cmd
}

func (a app) View() string {
	keys := a.tabs.KeyMap()
	bindings := append(keys.ShortHelp(), quitKey)
	return lipgloss.JoinVertical(lipgloss.Left, a.tabs.View(), a.help.ShortHelpView(bindings))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/internal/slotfile"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report unpaired tabs and panels in a slot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := slotfile.Load(args[0])
			if err != nil {
				return err
			}
			prefixes, err := opts.prefixes(core.DotPrefixes)
			if err != nil {
				return err
			}
			set := core.Partition(prefixes, f.Slots)
			issues := core.Lint(prefixes, set)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}
			if len(issues) > 0 {
				return fmt.Errorf("%s: %d issue(s)", args[0], len(issues))
			}
			fmt.Fprintf(out, "%s: %d tabs, %d panels, ok\n", args[0], len(set.Tabs), len(set.Panels))
			return nil
		},
	}
}

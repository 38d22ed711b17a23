package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/htmltabs"
	"github.com/jask/tabkit/internal/slotfile"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var escape bool
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a slot file as an HTML tab widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setupLogger(false); err != nil {
				return err
			}
			f, err := slotfile.Load(args[0])
			if err != nil {
				return err
			}
			prefixes, err := opts.prefixes(core.DashPrefixes)
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

			w := htmltabs.New(htmlSlots(f.Slots, escape),
				htmltabs.WithPrefixes(prefixes),
				htmltabs.WithPolicy(policy),
				htmltabs.WithSharedStore(store),
				htmltabs.WithLogger(opts.logger),
			)
			srv := &http.Server{
				Addr:              opts.cfg.Server.Addr,
				Handler:           htmltabs.Handler(w, opts.cfg.Server.Title, opts.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			opts.logger.Info("serving tabs", "addr", srv.Addr, "file", args[0])
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&escape, "escape", false, "treat slot content as plain text instead of HTML")
	return cmd
}

// htmlSlots converts file content to HTML. Without escape the file is
// trusted markup written by the page author.
func htmlSlots(slots []core.Slot[string], escape bool) []core.Slot[template.HTML] {
	out := make([]core.Slot[template.HTML], 0, len(slots))
	for _, s := range slots {
		content := template.HTML(s.Content)
		if escape {
			content = template.HTML(template.HTMLEscapeString(s.Content))
		}
		out = append(out, core.Slot[template.HTML]{Key: s.Key, Content: content})
	}
	return out
}

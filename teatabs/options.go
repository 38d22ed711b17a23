package teatabs

import (
	"log/slog"

	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/widgets"
)

type options struct {
	prefixes    core.Prefixes
	sharedStore string
	policy      core.UnmatchedPolicy
	keys        KeyMap
	theme       widgets.Theme
	logger      *slog.Logger
	zones       *zone.Manager
	width       int
	height      int
}

type Option func(*options)

func defaultOptions() options {
	return options{
		prefixes: core.DotPrefixes,
		policy:   core.UnmatchedCompat,
		keys:     DefaultKeyMap(),
		theme:    widgets.DefaultTheme(),
		width:    80,
		height:   12,
	}
}

func WithPrefixes(p core.Prefixes) Option {
	return func(o *options) { o.prefixes = p }
}

// WithSharedStore is accepted for parity with the HTML binding; every
// Model keeps its own selection regardless of the key.
func WithSharedStore(key string) Option {
	return func(o *options) { o.sharedStore = key }
}

func WithPolicy(p core.UnmatchedPolicy) Option {
	return func(o *options) { o.policy = p }
}

func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}

func WithTheme(t widgets.Theme) Option {
	return func(o *options) { o.theme = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithZoneManager makes the Model mark its tabs in a shared manager. The
// owner of the manager is responsible for scanning the final view.
func WithZoneManager(z *zone.Manager) Option {
	return func(o *options) { o.zones = z }
}

func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

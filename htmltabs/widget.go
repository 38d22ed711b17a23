package htmltabs

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/jask/tabkit/core"
)

var tabsTemplate = template.Must(template.New("tabs").Parse(`<div data-tabs>
<div data-tab-list role="{{.ListRole}}">
{{- range .Tabs}}
<button role="{{.Role}}" type="button" data-tab id="{{.ID}}" aria-selected="{{.Selected}}" tabindex="{{.TabIndex}}"{{if .Autofocus}} autofocus{{end}}>{{.Content}}</button>
{{- end}}
</div>
{{- range .Panels}}
<div role="{{.Role}}" data-tab-panel aria-labelledby="{{.LabelledBy}}"{{if .Hidden}} hidden{{end}}>{{.Content}}</div>
{{- end}}
</div>
`))

type tabView struct {
	core.TabNode[template.HTML]
	Autofocus bool
}

type treeView struct {
	ListRole string
	Tabs     []tabView
	Panels   []core.PanelNode[template.HTML]
}

// Widget renders one tab widget instance and applies the events a browser
// reports back for it.
type Widget struct {
	prefixes core.Prefixes
	set      core.Set[template.HTML]
	sel      *core.Selection
	nav      *core.Navigator[template.HTML]
	logger   *slog.Logger

	// autofocus is the tab that last received focus; it is rendered with
	// the autofocus attribute so the browser restores focus after reload.
	autofocus string
}

type htmlControl struct {
	key string
	w   *Widget
}

func (c *htmlControl) Focus() { c.w.autofocus = c.key }

type options struct {
	prefixes    core.Prefixes
	sharedStore string
	policy      core.UnmatchedPolicy
	logger      *slog.Logger
}

type Option func(*options)

func WithPrefixes(p core.Prefixes) Option {
	return func(o *options) { o.prefixes = p }
}

// WithSharedStore records a store key; widgets sharing it stay independent.
func WithSharedStore(key string) Option {
	return func(o *options) { o.sharedStore = key }
}

func WithPolicy(p core.UnmatchedPolicy) Option {
	return func(o *options) { o.policy = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New(slots []core.Slot[template.HTML], opts ...Option) *Widget {
	o := options{prefixes: core.DashPrefixes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	w := &Widget{
		prefixes: o.prefixes,
		set:      core.Partition(o.prefixes, slots),
		logger:   o.logger,
	}
	w.sel = core.NewSelection(w.set.FirstPanelID(),
		core.WithSharedStore(o.sharedStore),
		core.WithOnChange(func(prev, next string) {
			w.logger.Debug("tab selected", "from", prev, "to", next)
		}),
	)
	focus := core.NewFocusRegistry()
	for _, t := range w.set.Tabs {
		focus.Register(t.Key, &htmlControl{key: t.Key, w: w})
	}
	w.nav = core.NewNavigator(w.set, w.sel, focus, o.policy)
	return w
}

func (w *Widget) Selected() string    { return w.sel.Get() }
func (w *Widget) SharedStore() string { return w.sel.SharedStore() }
func (w *Widget) Autofocus() string   { return w.autofocus }

func (w *Widget) Tree() core.Tree[template.HTML] {
	return core.BuildTree(w.prefixes, w.set, w.sel.Get())
}

// Click applies a click on the tab with the given id (its prefixed key).
// The clicked button keeps focus, as it would in a browser.
func (w *Widget) Click(tabKey string) bool {
	if !w.nav.Select(tabKey) {
		return false
	}
	w.autofocus = tabKey
	return true
}

// KeyDown applies a keydown on the tab list. key is a DOM key name such as
// "ArrowLeft".
func (w *Widget) KeyDown(key string) bool {
	return w.nav.HandleKey(key)
}

func (w *Widget) Render(out io.Writer) error {
	tree := w.Tree()
	view := treeView{ListRole: tree.List.Role, Panels: tree.Panels, Tabs: make([]tabView, 0, len(tree.List.Tabs))}
	for _, t := range tree.List.Tabs {
		view.Tabs = append(view.Tabs, tabView{TabNode: t, Autofocus: t.ID == w.autofocus})
	}
	if err := tabsTemplate.Execute(out, view); err != nil {
		return fmt.Errorf("render tabs: %w", err)
	}
	return nil
}

func (w *Widget) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := w.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

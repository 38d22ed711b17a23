package core

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

type IssueKind int

const (
	OrphanTab IssueKind = iota
	OrphanPanel
	DuplicateKey
)

func (k IssueKind) String() string {
	switch k {
	case OrphanTab:
		return "orphan-tab"
	case OrphanPanel:
		return "orphan-panel"
	case DuplicateKey:
		return "duplicate-key"
	default:
		return "unknown"
	}
}

// Issue is a pairing problem in a slot collection. Widgets render these
// collections anyway; Lint only reports them.
type Issue struct {
	Kind    IssueKind
	Key     string
	Suggest string
}

func (i Issue) String() string {
	msg := fmt.Sprintf("%s: %s", i.Kind, i.Key)
	if i.Suggest != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", i.Suggest)
	}
	return msg
}

const maxSuggestDistance = 2

// Lint reports tabs without panels, panels without tabs, and repeated keys.
func Lint[C any](p Prefixes, set Set[C]) []Issue {
	var issues []Issue

	seen := make(map[string]bool, len(set.Tabs)+len(set.Panels))
	for _, group := range [][]Entry[C]{set.Tabs, set.Panels} {
		for _, e := range group {
			if seen[e.Key] {
				issues = append(issues, Issue{Kind: DuplicateKey, Key: e.Key})
			}
			seen[e.Key] = true
		}
	}

	tabIDs := entryIDs(set.Tabs)
	panelIDs := entryIDs(set.Panels)
	for _, t := range set.Tabs {
		if _, ok := panelIDs[t.ID]; ok {
			continue
		}
		issue := Issue{Kind: OrphanTab, Key: t.Key}
		if id := nearest(t.ID, panelIDs, tabIDs); id != "" {
			issue.Suggest = p.PanelKey(id)
		}
		issues = append(issues, issue)
	}
	for _, pn := range set.Panels {
		if _, ok := tabIDs[pn.ID]; ok {
			continue
		}
		issue := Issue{Kind: OrphanPanel, Key: pn.Key}
		if id := nearest(pn.ID, tabIDs, panelIDs); id != "" {
			issue.Suggest = p.TabKey(id)
		}
		issues = append(issues, issue)
	}
	return issues
}

func entryIDs[C any](entries []Entry[C]) map[string]struct{} {
	out := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		out[e.ID] = struct{}{}
	}
	return out
}

// nearest picks the closest candidate that is itself unpaired, so a
// suggestion never points at an id that already has its counterpart.
func nearest(id string, candidates, paired map[string]struct{}) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for c := range candidates {
		if _, ok := paired[c]; ok {
			continue
		}
		d := levenshtein.ComputeDistance(id, c)
		if d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	return best
}

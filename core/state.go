package core

// Selection holds the base id of the visible panel. It is owned by one
// widget instance and mutated only from that instance's event handlers.
type Selection struct {
	curr        string
	sharedStore string
	onChange    func(prev, next string)
}

type SelectionOption func(*Selection)

// WithSharedStore records a store key for cross-instance sharing. The key
// is kept for callers to read back but instances stay independent.
func WithSharedStore(key string) SelectionOption {
	return func(s *Selection) { s.sharedStore = key }
}

// WithOnChange registers an observer called after the value changes.
func WithOnChange(fn func(prev, next string)) SelectionOption {
	return func(s *Selection) { s.onChange = fn }
}

func NewSelection(initial string, opts ...SelectionOption) *Selection {
	s := &Selection{curr: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selection) Get() string { return s.curr }

// Set stores id without checking that any panel carries it; an unknown id
// leaves every panel hidden.
func (s *Selection) Set(id string) {
	prev := s.curr
	s.curr = id
	if prev != id && s.onChange != nil {
		s.onChange(prev, id)
	}
}

func (s *Selection) SharedStore() string { return s.sharedStore }

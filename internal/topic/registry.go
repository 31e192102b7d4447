package topic

import (
	"fmt"
	"strings"
)

// Catalogue is the full, immutable set of topics plus their parallel,
// mutable state — built once at startup per spec.md §3's lifecycle rule
// ("Topic definitions are constructed once at startup and are immutable").
type Catalogue struct {
	topics []*Topic
	states []*State
	index  map[string]int
}

// NewCatalogue builds a registry over topics, allocating one fresh State
// per entry and a case-insensitive name index.
func NewCatalogue(topics []*Topic) *Catalogue {
	c := &Catalogue{
		topics: topics,
		states: make([]*State, len(topics)),
		index:  make(map[string]int, len(topics)),
	}
	for i, t := range topics {
		c.states[i] = NewState()
		c.index[strings.ToLower(t.Name)] = i
	}
	return c
}

// Topics returns the full ordered topic list.
func (c *Catalogue) Topics() []*Topic {
	return c.topics
}

// StateAt returns the state for the topic at position i, as returned by
// Topics().
func (c *Catalogue) StateAt(i int) *State {
	return c.states[i]
}

// Find resolves name case-insensitively, returning its topic, its index
// into Topics(), and whether it was found.
func (c *Catalogue) Find(name string) (*Topic, int, bool) {
	i, ok := c.index[strings.ToLower(name)]
	if !ok {
		return nil, -1, false
	}
	return c.topics[i], i, true
}

// State looks up a topic's mutable state directly by name.
func (c *Catalogue) State(name string) (*State, bool) {
	_, i, ok := c.Find(name)
	if !ok {
		return nil, false
	}
	return c.states[i], true
}

// Command resolves a write request per spec.md §4.5: unknown name,
// non-writable topic and out-of-domain values each surface their own
// sentinel error; on success it returns the topic and its parsed integer
// value, ready to enqueue.
func (c *Catalogue) Command(name string, value any) (*Topic, int, error) {
	t, _, ok := c.Find(name)
	if !ok {
		return nil, 0, fmt.Errorf("%s: %w", name, ErrUnknownTopic)
	}
	if !t.Writable() {
		return nil, 0, fmt.Errorf("%s: %w", name, ErrNotWritable)
	}
	parsed, err := t.Parse(value)
	if err != nil {
		return nil, 0, err
	}
	return t, parsed, nil
}

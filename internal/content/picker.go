package content

import (
	"context"
	"math/rand"
)

// LastSentStore remembers the last item sent per key (user and kind).
type LastSentStore interface {
	LastSent(ctx context.Context, key string) (string, bool, error)
	SetLastSent(ctx context.Context, key, value string) error
}

// Picker chooses items at random, avoiding the item last sent under the same key.
type Picker struct {
	store LastSentStore
	intn  func(n int) int
}

// NewPicker creates a Picker backed by store. intn defaults to math/rand.Intn.
func NewPicker(store LastSentStore, intn func(n int) int) *Picker {
	if intn == nil {
		intn = rand.Intn
	}
	return &Picker{store: store, intn: intn}
}

// Pick returns a random item and records it as last sent under key. It
// reports false when items is empty.
func (p *Picker) Pick(ctx context.Context, key string, items []string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}

	candidates := items
	if len(items) > 1 {
		last, ok, err := p.store.LastSent(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			candidates = without(items, last)
			if len(candidates) == 0 {
				candidates = items
			}
		}
	}

	choice := candidates[p.intn(len(candidates))]
	if err := p.store.SetLastSent(ctx, key, choice); err != nil {
		return "", false, err
	}
	return choice, true, nil
}

func without(items []string, skip string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != skip {
			out = append(out, it)
		}
	}
	return out
}

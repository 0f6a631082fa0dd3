package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrActionsRan is returned when actions are added after Run.
var ErrActionsRan = errors.New("startup actions already ran")

// Action is a one-shot startup task. Lower Order values run first.
type Action struct {
	Name  string
	Order int
	Run   func(ctx context.Context) error
}

// Actions runs registered startup tasks exactly once, synchronously and in
// ascending Order. Ties keep registration order.
type Actions struct {
	mu      sync.Mutex
	actions []Action
	once    sync.Once
	err     error
	ran     bool
}

// NewActions creates an empty action set.
func NewActions() *Actions {
	return &Actions{}
}

// Add registers an action. It fails once Run has been called.
func (a *Actions) Add(action Action) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ran {
		return fmt.Errorf("add %s: %w", action.Name, ErrActionsRan)
	}
	if action.Run == nil {
		return fmt.Errorf("add %s: run function required", action.Name)
	}

	a.actions = append(a.actions, action)
	return nil
}

// Names returns the action names in execution order.
func (a *Actions) Names() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	ordered := a.ordered()
	names := make([]string, len(ordered))
	for i, action := range ordered {
		names[i] = action.Name
	}
	return names
}

// Run executes every action once. Later calls return the first result.
// The first failing action stops the sequence.
func (a *Actions) Run(ctx context.Context) error {
	a.once.Do(func() {
		a.mu.Lock()
		a.ran = true
		ordered := a.ordered()
		a.mu.Unlock()

		for _, action := range ordered {
			if err := action.Run(ctx); err != nil {
				a.err = fmt.Errorf("startup action %s: %w", action.Name, err)
				return
			}
		}
	})
	return a.err
}

func (a *Actions) ordered() []Action {
	ordered := slices.Clone(a.actions)
	slices.SortStableFunc(ordered, func(x, y Action) int {
		return x.Order - y.Order
	})
	return ordered
}

package binder_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/binder"
)

type statusSystem struct{ name string }

type bowlSystem struct{ statuses *statusSystem }

func value(v any) binder.Provider {
	return func(*binder.Scope) (any, error) { return v, nil }
}

func TestBinder_Bind_Duplicate(t *testing.T) {
	b := binder.New()
	if err := b.Bind("status", value(&statusSystem{})); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	err := b.Bind("status", value(&statusSystem{}))
	if !errors.Is(err, binder.ErrDuplicateBinding) {
		t.Errorf("Bind() = %v, want %v", err, binder.ErrDuplicateBinding)
	}
}

func TestBinder_Bind_NilProvider(t *testing.T) {
	if err := binder.New().Bind("status", nil); err == nil {
		t.Error("Bind(nil) error = nil, want error")
	}
}

func TestResolver_Resolve_Singleton(t *testing.T) {
	var calls atomic.Int32
	b := binder.New()
	b.Bind("status", func(*binder.Scope) (any, error) {
		calls.Add(1)
		return &statusSystem{name: "statuses"}, nil
	})

	res := b.Resolver()

	var wg sync.WaitGroup
	results := make([]any, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = res.Resolve("status")
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("Resolve() returned distinct instances")
		}
	}
	if !res.Resolved("status") {
		t.Error("Resolved(status) = false, want true")
	}
}

func TestResolver_Resolve_Lazy(t *testing.T) {
	called := false
	b := binder.New()
	b.Bind("status", func(*binder.Scope) (any, error) {
		called = true
		return &statusSystem{}, nil
	})

	res := b.Resolver()
	if called || res.Resolved("status") {
		t.Error("provider ran before first resolution")
	}
}

func TestResolver_Resolve_Dependency(t *testing.T) {
	b := binder.New()
	b.Bind("status", func(*binder.Scope) (any, error) {
		return &statusSystem{}, nil
	})
	b.Bind("bowl", func(s *binder.Scope) (any, error) {
		st, err := binder.Get[*statusSystem](s, "status")
		if err != nil {
			return nil, err
		}
		return &bowlSystem{statuses: st}, nil
	})

	res := b.Resolver()

	bowl, err := binder.Get[*bowlSystem](res, "bowl")
	if err != nil {
		t.Fatalf("Get(bowl) error = %v", err)
	}
	status := binder.MustGet[*statusSystem](res, "status")
	if bowl.statuses != status {
		t.Error("bowl did not receive the shared status instance")
	}
}

func TestResolver_Resolve_Missing(t *testing.T) {
	res := binder.New().Resolver()

	_, err := res.Resolve("bowl")
	if !errors.Is(err, binder.ErrMissingBinding) {
		t.Errorf("Resolve() = %v, want %v", err, binder.ErrMissingBinding)
	}
}

func TestResolver_Resolve_MissingDependency(t *testing.T) {
	b := binder.New()
	b.Bind("bowl", func(s *binder.Scope) (any, error) {
		return s.Resolve("status")
	})

	_, err := b.Resolver().Resolve("bowl")
	if !errors.Is(err, binder.ErrMissingBinding) {
		t.Errorf("Resolve() = %v, want %v", err, binder.ErrMissingBinding)
	}
}

func TestResolver_Resolve_Cycle(t *testing.T) {
	b := binder.New()
	b.Bind("a", func(s *binder.Scope) (any, error) { return s.Resolve("b") })
	b.Bind("b", func(s *binder.Scope) (any, error) { return s.Resolve("a") })

	_, err := b.Resolver().Resolve("a")
	if !errors.Is(err, binder.ErrCycle) {
		t.Errorf("Resolve() = %v, want %v", err, binder.ErrCycle)
	}
}

func TestResolver_Resolve_SelfCycle(t *testing.T) {
	b := binder.New()
	b.Bind("bowl", func(s *binder.Scope) (any, error) { return s.Resolve("bowl") })

	_, err := b.Resolver().Resolve("bowl")
	if !errors.Is(err, binder.ErrCycle) {
		t.Errorf("Resolve() = %v, want %v", err, binder.ErrCycle)
	}
}

func TestResolver_Resolve_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	b := binder.New()
	b.Bind("status", func(*binder.Scope) (any, error) { return nil, boom })

	res := b.Resolver()
	if _, err := res.Resolve("status"); !errors.Is(err, boom) {
		t.Errorf("Resolve() = %v, want %v", err, boom)
	}
	if res.Resolved("status") {
		t.Error("failed provider cached an instance")
	}
}

func TestResolver_ResolveAll(t *testing.T) {
	b := binder.New()
	b.Bind("status", value(&statusSystem{}))
	b.Bind("timber", value("timber"))

	res := b.Resolver()
	if err := res.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll() error = %v", err)
	}
	if !res.Resolved("status") || !res.Resolved("timber") {
		t.Error("ResolveAll() left capabilities unresolved")
	}

	err := res.ResolveAll("status", "bowl", "customer")
	if !errors.Is(err, binder.ErrMissingBinding) {
		t.Errorf("ResolveAll() = %v, want %v", err, binder.ErrMissingBinding)
	}
}

func TestResolver_FrozenBindings(t *testing.T) {
	b := binder.New()
	res := b.Resolver()
	b.Bind("status", value(&statusSystem{}))

	if _, err := res.Resolve("status"); !errors.Is(err, binder.ErrMissingBinding) {
		t.Errorf("Resolve() = %v, want %v", err, binder.ErrMissingBinding)
	}
}

func TestGet_WrongType(t *testing.T) {
	b := binder.New()
	b.Bind("status", value("not a system"))

	_, err := binder.Get[*statusSystem](b.Resolver(), "status")
	if !errors.Is(err, binder.ErrWrongType) {
		t.Errorf("Get() = %v, want %v", err, binder.ErrWrongType)
	}
}

func TestMustGet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet() did not panic")
		}
	}()
	binder.MustGet[*statusSystem](binder.New().Resolver(), "status")
}

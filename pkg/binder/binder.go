// Package binder maps service capabilities to providers and resolves each
// capability to a single shared instance for the life of the process.
// Instances live in a samber/do injector under the capability name.
package binder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/samber/do/v2"
)

// Binder errors.
var (
	ErrMissingBinding   = errors.New("missing binding")
	ErrDuplicateBinding = errors.New("duplicate binding")
	ErrCycle            = errors.New("binding cycle")
	ErrWrongType        = errors.New("binding has wrong type")
)

// Capability names a service boundary, such as "bowl" or "status".
type Capability string

// Source resolves capabilities. Both *Resolver and *Scope implement it.
type Source interface {
	Resolve(c Capability) (any, error)
}

// Provider constructs the instance bound to a capability. It may resolve
// the capabilities it depends on through s.
type Provider func(s *Scope) (any, error)

type binding struct {
	c Capability
	p Provider
}

// Binder collects bindings before resolution starts.
type Binder struct {
	bindings []binding
	bound    map[Capability]bool
}

// New creates an empty binder.
func New() *Binder {
	return &Binder{bound: make(map[Capability]bool)}
}

// Bind registers p for c. Each capability may be bound once.
func (b *Binder) Bind(c Capability, p Provider) error {
	if p == nil {
		return fmt.Errorf("bind %s: nil provider", c)
	}
	if b.bound[c] {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, c)
	}
	b.bound[c] = true
	b.bindings = append(b.bindings, binding{c: c, p: p})
	return nil
}

// Resolver freezes the current bindings into a new injector. Later calls
// to Bind do not affect it.
func (b *Binder) Resolver() *Resolver {
	r := &Resolver{
		injector: do.New(),
		bound:    make(map[Capability]bool, len(b.bindings)),
	}

	for _, bd := range b.bindings {
		r.bound[bd.c] = true
		r.order = append(r.order, bd.c)
		do.ProvideNamed(r.injector, string(bd.c), r.provider(bd.c, bd.p))
	}
	return r
}

// Resolver lazily constructs bound instances and caches them.
// It is safe for concurrent use.
type Resolver struct {
	injector *do.RootScope
	bound    map[Capability]bool
	order    []Capability
	resolved sync.Map
}

// Resolve returns the instance bound to c, constructing it on first use.
// Repeated calls return the same instance.
func (r *Resolver) Resolve(c Capability) (any, error) {
	return r.invoke(r.injector, c)
}

// ResolveAll eagerly resolves every capability in required, or every bound
// capability when required is empty. All failures are joined.
func (r *Resolver) ResolveAll(required ...Capability) error {
	if len(required) == 0 {
		required = r.order
	}

	var errs []error
	for _, c := range required {
		if _, err := r.Resolve(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Resolved reports whether c already has an instance.
func (r *Resolver) Resolved(c Capability) bool {
	_, ok := r.resolved.Load(c)
	return ok
}

// provider adapts p to the injector. The injector handed to the closure
// records the invocation chain, which is how cycles are detected.
func (r *Resolver) provider(c Capability, p Provider) do.Provider[any] {
	return func(i do.Injector) (any, error) {
		v, err := p(&Scope{r: r, injector: i})
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", c, err)
		}
		return v, nil
	}
}

func (r *Resolver) invoke(i do.Injector, c Capability) (any, error) {
	if !r.bound[c] {
		return nil, fmt.Errorf("%w: %s", ErrMissingBinding, c)
	}

	v, err := do.InvokeNamed[any](i, string(c))
	if err != nil {
		return nil, mapError(c, err)
	}

	r.resolved.Store(c, struct{}{})
	return v, nil
}

// mapError translates injector failures into binder errors. Provider
// errors already carry their capability and pass through.
func mapError(c Capability, err error) error {
	switch {
	case errors.Is(err, ErrCycle), errors.Is(err, ErrMissingBinding):
		return err
	case errors.Is(err, do.ErrCircularDependency):
		return fmt.Errorf("%w: %s: %v", ErrCycle, c, err)
	case errors.Is(err, do.ErrServiceNotFound):
		return fmt.Errorf("%w: %s: %v", ErrMissingBinding, c, err)
	}
	return err
}

// Scope is the view of a resolver handed to providers. It must not be
// retained past the provider call.
type Scope struct {
	r        *Resolver
	injector do.Injector
}

// Resolve returns the instance bound to c.
func (s *Scope) Resolve(c Capability) (any, error) {
	return s.r.invoke(s.injector, c)
}

// Get resolves c from src and asserts its type.
func Get[T any](src Source, c Capability) (T, error) {
	var zero T
	v, err := src.Resolve(c)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrWrongType, c, v)
	}
	return t, nil
}

// MustGet is Get for wiring code that has already run ResolveAll.
func MustGet[T any](src Source, c Capability) T {
	t, err := Get[T](src, c)
	if err != nil {
		panic(err)
	}
	return t
}

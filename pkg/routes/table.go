package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/superbowl/pkg/openapi"
)

// ErrConflict reports two entries registering the same method and path.
var ErrConflict = errors.New("conflicting route")

// ErrInvalidRoute reports a malformed declaration.
var ErrInvalidRoute = errors.New("invalid route")

// Router accepts ServeMux-style patterns. *http.ServeMux satisfies it.
type Router interface {
	Handle(pattern string, handler http.Handler)
}

// Entry is a route expanded under a concrete prefix.
type Entry struct {
	Method  string
	Path    string
	Ref     Ref
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
	Tags    []string
	// Scoped entries exist under a single prefix and are not mirrored.
	Scoped bool
}

// Pattern returns the ServeMux pattern for the entry.
func (e Entry) Pattern() string {
	return e.Method + " " + muxPath(e.Path)
}

type scoped struct {
	prefix string
	group  Group
}

// Table is an ordered route declaration expanded over a prefix set. It is
// safe for concurrent use; declarations added after a Lookup are visible
// to the next one.
type Table struct {
	mu       sync.Mutex
	prefixes []string
	groups   []Group
	scoped   []scoped
	lookup   *index
}

type index struct {
	mux       *http.ServeMux
	byPattern map[string]Entry
}

// NewTable creates a table mirrored over prefixes. With no prefixes the
// root "" is used.
func NewTable(prefixes ...string) *Table {
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}
	return &Table{prefixes: prefixes}
}

// Add declares groups mirrored under every prefix.
func (t *Table) Add(groups ...Group) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.groups = append(t.groups, groups...)
	t.lookup = nil
}

// AddScoped declares groups registered only under prefix.
func (t *Table) AddScoped(prefix string, groups ...Group) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, g := range groups {
		t.scoped = append(t.scoped, scoped{prefix: prefix, group: g})
	}
	t.lookup = nil
}

// Entries returns the expanded table: for each prefix in order, every
// mirrored route in declaration order, followed by scoped routes.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries()
}

func (t *Table) entries() []Entry {
	entries := make([]Entry, 0)
	for _, prefix := range t.prefixes {
		for _, g := range t.groups {
			entries = append(entries, expand(prefix, g, false)...)
		}
	}
	for _, s := range t.scoped {
		entries = append(entries, expand(s.prefix, s.group, true)...)
	}
	return entries
}

// Validate checks every entry for completeness and rejects duplicate
// method and path pairs.
func (t *Table) Validate() error {
	return validate(t.Entries())
}

// Register validates the table and adds every entry to r. The table is
// first mounted on a scratch mux so that conflicts only the router detects
// (overlapping wildcards) are returned as ErrConflict before r is touched.
func (t *Table) Register(r Router) error {
	entries := t.Entries()
	if err := validate(entries); err != nil {
		return err
	}
	if err := mount(http.NewServeMux(), entries, nil); err != nil {
		return err
	}
	return mount(r, entries, nil)
}

// Lookup resolves method and path the way the registered mux would.
// It reports false when no entry matches.
func (t *Table) Lookup(method, path string) (Entry, bool) {
	t.mu.Lock()
	if t.lookup == nil {
		t.lookup = buildIndex(t.entries())
	}
	idx := t.lookup
	t.mu.Unlock()

	if idx.mux == nil {
		return Entry{}, false
	}

	req, err := http.NewRequest(method, path, nil)
	if err != nil {
		return Entry{}, false
	}
	_, pattern := idx.mux.Handler(req)
	e, ok := idx.byPattern[pattern]
	return e, ok
}

// AddToSpec documents every entry in spec. Entries without an explicit
// operation get one derived from their ref.
func (t *Table) AddToSpec(spec *openapi.Spec) {
	for _, e := range t.Entries() {
		var op *openapi.Operation
		if e.OpenAPI != nil {
			cp := *e.OpenAPI
			op = &cp
		} else {
			op = &openapi.Operation{
				Summary:   e.Ref.String(),
				Responses: map[int]*openapi.Response{200: {Description: "OK"}},
			}
		}
		if op.OperationID == "" {
			op.OperationID = operationID(e)
		}
		if len(op.Tags) == 0 {
			op.Tags = e.Tags
		}
		spec.AddOperation(strings.ReplaceAll(e.Path, "...}", "}"), e.Method, op)
	}
}

func validate(entries []Entry) error {
	seen := make(map[string]Ref)
	var errs []error

	for _, e := range entries {
		if err := e.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := e.Pattern()
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%w: %s bound to %s and %s", ErrConflict, key, prev, e.Ref))
			continue
		}
		seen[key] = e.Ref
	}

	return errors.Join(errs...)
}

// mount adds entries to r, replacing each handler with h when h is set.
// A router panic is returned as ErrConflict.
func mount(r Router, entries []Entry, h http.Handler) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrConflict, rec)
		}
	}()

	for _, e := range entries {
		handler := http.Handler(e.Handler)
		if h != nil {
			handler = h
		}
		r.Handle(e.Pattern(), handler)
	}
	return nil
}

// buildIndex returns an empty index when entries do not form a valid table.
func buildIndex(entries []Entry) *index {
	if err := validate(entries); err != nil {
		return &index{}
	}

	mux := http.NewServeMux()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	if err := mount(mux, entries, noop); err != nil {
		return &index{}
	}

	byPattern := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPattern[e.Pattern()] = e
	}
	return &index{mux: mux, byPattern: byPattern}
}

// Join places path under prefix. The root path collapses to the bare
// prefix, so "/" under "/superbowl" is "/superbowl".
func Join(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if path == "/" || path == "" {
		return prefix
	}
	return prefix + path
}

func expand(prefix string, g Group, isScoped bool) []Entry {
	entries := make([]Entry, 0, len(g.Routes))
	for _, r := range g.Routes {
		entries = append(entries, Entry{
			Method:  r.Method,
			Path:    Join(prefix, r.Pattern),
			Ref:     Ref{Capability: g.Capability, Action: r.Action},
			Handler: r.Handler,
			OpenAPI: r.OpenAPI,
			Tags:    g.Tags,
			Scoped:  isScoped,
		})
	}
	return entries
}

func (e Entry) validate() error {
	switch {
	case e.Method == "":
		return fmt.Errorf("%w: %s missing method", ErrInvalidRoute, e.Path)
	case !strings.HasPrefix(e.Path, "/"):
		return fmt.Errorf("%w: %s %q must start with /", ErrInvalidRoute, e.Method, e.Path)
	case e.Handler == nil:
		return fmt.Errorf("%w: %s %s missing handler", ErrInvalidRoute, e.Method, e.Path)
	case e.Ref.Capability == "" || e.Ref.Action == "":
		return fmt.Errorf("%w: %s %s missing handler reference", ErrInvalidRoute, e.Method, e.Path)
	}
	return nil
}

func muxPath(path string) string {
	if path == "/" {
		return "/{$}"
	}
	return path
}

func operationID(e Entry) string {
	id := strings.ToLower(e.Method) + strings.NewReplacer("/", "_", "{", "", "}", "", ".", "").Replace(e.Path)
	return strings.TrimSuffix(id, "_")
}

package di

import (
	"fmt"
	"sort"
)

//go:generate go tool stringer -type=Partition

// Partition selects which half of a Registry a binding lives in.
type Partition uint8

const (
	// Primary bindings are visible to every resolution mode.
	Primary Partition = iota
	// View bindings are visible to host-restricted resolution, and to
	// injectors whose local lookup exposes them.
	View
)

// Registry maps tokens to instances for a single injector scope.
//
// Each token has at most one binding per partition; a later Set for the same
// token and partition overwrites the earlier one.
type Registry struct {
	primary map[Token]any
	view    map[Token]any
}

func NewRegistry() *Registry {
	return &Registry{primary: map[Token]any{}, view: map[Token]any{}}
}

// Set binds token to instance in the given partition.
// It panics with ErrNilToken if token is nil.
func (r *Registry) Set(token Token, instance any, p Partition) {
	if token == nil {
		panic(ErrNilToken)
	}
	r.items(p)[token] = instance
}

// Get returns the binding for token in the given partition. A binding whose
// instance is nil still reports ok=true.
func (r *Registry) Get(token Token, p Partition) (any, bool) {
	v, ok := r.items(p)[token]
	return v, ok
}

// Provide stores a primary binding and returns the registry for chaining.
func (r *Registry) Provide(token Token, instance any) *Registry {
	r.Set(token, instance, Primary)
	return r
}

// ProvideView stores a view binding and returns the registry for chaining.
func (r *Registry) ProvideView(token Token, instance any) *Registry {
	r.Set(token, instance, View)
	return r
}

// MustGet returns the binding or panics with a helpful message.
// Useful in examples/tests where a missing binding should fail fast.
func (r *Registry) MustGet(token Token, p Partition) any {
	v, ok := r.Get(token, p)
	if !ok {
		panic(fmt.Errorf("di: registry missing %s binding %q", p, tokenName(token)))
	}
	return v
}

// Tokens returns the names of all tokens bound in partition p, sorted.
func (r *Registry) Tokens(p Partition) []string {
	m := r.items(p)
	names := make([]string, 0, len(m))
	for t := range m {
		names = append(names, t.TokenName())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings in partition p.
func (r *Registry) Len(p Partition) int {
	return len(r.items(p))
}

func (r *Registry) items(p Partition) map[Token]any {
	switch p {
	case Primary:
		if r.primary == nil {
			r.primary = map[Token]any{}
		}
		return r.primary
	case View:
		if r.view == nil {
			r.view = map[Token]any{}
		}
		return r.view
	default:
		panic(fmt.Errorf("di: unknown partition %s", p))
	}
}

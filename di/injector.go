package di

import (
	"github.com/rs/zerolog"
)

// Injector resolves tokens to instances.
//
// Lookup has three outcomes:
//   - (v, true, nil): a binding was found.
//   - (nil, false, nil): Absent; only Self-scoped lookups report it.
//   - (nil, false, err): resolution failed, typically with a NotFoundError
//     raised by the terminal injector.
type Injector interface {
	Lookup(token Token, mods Modifiers, hostOnly bool) (any, bool, error)
}

// NullInjector terminates every injector chain. It holds no providers and
// fails every lookup with NotFoundError.
type NullInjector struct{}

// Lookup implements Injector.
func (NullInjector) Lookup(token Token, _ Modifiers, _ bool) (any, bool, error) {
	return nil, false, NotFoundError{Token: token}
}

// LocalLookup is the "resolve here" step of the default resolution path.
// Injector variants differ only in the LocalLookup they hold.
type LocalLookup func(reg *Registry, token Token) (any, bool)

// PrimaryOnly checks the primary partition. It is the default LocalLookup.
func PrimaryOnly(reg *Registry, token Token) (any, bool) {
	return reg.Get(token, Primary)
}

// PrimaryThenView checks the primary partition, then the view partition.
func PrimaryThenView(reg *Registry, token Token) (any, bool) {
	if v, ok := reg.Get(token, Primary); ok {
		return v, true
	}
	return reg.Get(token, View)
}

// Option configures a Node.
type Option func(*Node)

// WithName sets the scope name used in logs and dumps.
func WithName(name string) Option {
	return func(n *Node) { n.name = name }
}

// WithLogger sets the logger used for lookup tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Node) { n.log = l }
}

// WithLocalLookup replaces the local lookup step of the default path.
func WithLocalLookup(fn LocalLookup) Option {
	return func(n *Node) { n.local = fn }
}

// Node is a scoped injector: a registry plus a single, fixed parent.
type Node struct {
	name   string
	parent Injector
	reg    *Registry
	local  LocalLookup
	log    zerolog.Logger
}

var _ Injector = (*Node)(nil)

// NewNode creates an injector whose lookups fall back to parent.
// A nil parent is replaced with a NullInjector.
func NewNode(parent Injector, opts ...Option) *Node {
	n := &Node{
		name:   "node",
		parent: orNull(parent),
		reg:    NewRegistry(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.local == nil {
		n.local = PrimaryOnly
	}
	return n
}

// Name returns the scope name.
func (n *Node) Name() string { return n.name }

// Parent returns the injector lookups fall back to.
func (n *Node) Parent() Injector { return n.parent }

// Registry returns the scope's own bindings.
func (n *Node) Registry() *Registry { return n.reg }

// AddProvider binds token in this scope, in the view partition when asView
// is set. A later call for the same token and partition overwrites.
func (n *Node) AddProvider(token Token, instance any, asView bool) {
	p := Primary
	if asView {
		p = View
	}
	n.reg.Set(token, instance, p)
}

// Lookup implements Injector.
//
// Modifiers are evaluated in this order:
//  1. Self: this scope's primary bindings only; a miss is Absent.
//  2. SkipSelf: the parent, asked as Self.
//  3. Host (with hostOnly): this scope's view bindings, then the parent asked as Self.
//  4. Otherwise: the local lookup, then the parent with the original modifiers.
func (n *Node) Lookup(token Token, mods Modifiers, hostOnly bool) (any, bool, error) {
	if token == nil {
		panic(ErrNilToken)
	}
	if err := mods.Validate(); err != nil {
		return nil, false, err
	}

	n.log.Debug().
		Str("scope", n.name).
		Str("token", token.TokenName()).
		Str("mode", mods.mode()).
		Bool("hostOnly", hostOnly).
		Msg("lookup")

	switch {
	case mods.Self:
		v, ok := n.reg.Get(token, Primary)
		return v, ok, nil
	case mods.SkipSelf:
		return n.parent.Lookup(token, Modifiers{Self: true}, hostOnly)
	case mods.Host && hostOnly:
		if v, ok := n.reg.Get(token, View); ok {
			return v, true, nil
		}
		return n.parent.Lookup(token, Modifiers{Self: true}, true)
	}

	if v, ok := n.local(n.reg, token); ok {
		return v, true, nil
	}
	return n.parent.Lookup(token, mods, hostOnly)
}

func orNull(inj Injector) Injector {
	switch v := inj.(type) {
	case nil:
		return NullInjector{}
	case *Node:
		if v == nil {
			return NullInjector{}
		}
	case *EnvironmentInjector:
		if v == nil {
			return NullInjector{}
		}
	}
	return inj
}

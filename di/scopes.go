package di

import (
	"errors"

	"github.com/rs/zerolog"
)

// NewRootInjector creates the top scope of a chain. Its parent is a
// NullInjector.
func NewRootInjector(opts ...Option) *Node {
	return NewNode(NullInjector{}, append([]Option{WithName("root")}, opts...)...)
}

// NewModuleInjector creates a module scope. It resolves against its primary
// bindings and traces each time it is consulted.
func NewModuleInjector(parent Injector, opts ...Option) *Node {
	n := NewNode(parent, append([]Option{WithName("module")}, opts...)...)
	n.local = tracedLocal(n.log, n.name, "module injector consulted", n.local)
	return n
}

// NewElementInjector creates an element scope. Unless overridden, its local
// lookup also exposes view bindings on the default path.
func NewElementInjector(parent Injector, opts ...Option) *Node {
	base := []Option{WithName("element"), WithLocalLookup(PrimaryThenView)}
	n := NewNode(parent, append(base, opts...)...)
	n.local = tracedLocal(n.log, n.name, "element injector consulted", n.local)
	return n
}

func tracedLocal(log zerolog.Logger, scope, msg string, next LocalLookup) LocalLookup {
	return func(reg *Registry, token Token) (any, bool) {
		log.Debug().Str("scope", scope).Str("token", token.TokenName()).Msg(msg)
		return next(reg, token)
	}
}

// EnvironmentInjector is a Node that probes an auxiliary environment injector
// before running the standard resolution algorithm.
type EnvironmentInjector struct {
	*Node
	env Injector
}

var _ Injector = (*EnvironmentInjector)(nil)

// NewEnvironmentInjector creates an environment scope under parent. env may be
// nil, in which case the scope behaves as a plain Node.
func NewEnvironmentInjector(parent Injector, env Injector, opts ...Option) *EnvironmentInjector {
	if _, ok := orNull(env).(NullInjector); ok {
		env = nil
	}
	return &EnvironmentInjector{
		Node: NewNode(parent, append([]Option{WithName("environment")}, opts...)...),
		env:  env,
	}
}

// Environment returns the auxiliary injector, or nil.
func (e *EnvironmentInjector) Environment() Injector { return e.env }

// Lookup implements Injector.
//
// A value found by the environment injector wins. Absent and NotFound fall
// through to the standard algorithm; any other probe error is returned.
func (e *EnvironmentInjector) Lookup(token Token, mods Modifiers, hostOnly bool) (any, bool, error) {
	if e.env != nil {
		v, ok, err := e.env.Lookup(token, mods, hostOnly)
		switch {
		case ok:
			return v, true, nil
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, false, err
		}
	}
	return e.Node.Lookup(token, mods, hostOnly)
}

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sghaida/hinject/di"
)

type providerSink interface {
	AddProvider(token di.Token, instance any, asView bool)
}

// buildTree constructs every scope in declaration order and returns them by name.
func buildTree(t *Tree, log zerolog.Logger) (map[string]di.Injector, error) {
	scopes := make(map[string]di.Injector, len(t.Scopes))

	for _, s := range t.Scopes {
		opts := []di.Option{di.WithName(s.Name), di.WithLogger(log)}
		parent := scopes[s.Parent]

		var (
			inj  di.Injector
			sink providerSink
		)
		switch s.Kind {
		case kindRoot:
			n := di.NewRootInjector(opts...)
			inj, sink = n, n
		case kindModule:
			n := di.NewModuleInjector(parent, opts...)
			inj, sink = n, n
		case kindElement:
			n := di.NewElementInjector(parent, opts...)
			inj, sink = n, n
		case kindEnvironment:
			n := di.NewEnvironmentInjector(parent, scopes[s.Environment], opts...)
			inj, sink = n, n
		case kindNode:
			n := di.NewNode(parent, opts...)
			inj, sink = n, n
		default:
			return nil, fmt.Errorf("scope %q: unknown kind %q", s.Name, s.Kind)
		}

		bind(sink, s.Providers, false)
		bind(sink, s.ViewProviders, true)
		scopes[s.Name] = inj

		log.Debug().Str("scope", s.Name).Str("kind", s.Kind).Str("parent", s.Parent).Msg("scope built")
	}
	return scopes, nil
}

func bind(sink providerSink, bindings map[string]any, asView bool) {
	tokens := make([]string, 0, len(bindings))
	for token := range bindings {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	for _, token := range tokens {
		sink.AddProvider(di.Name(token), bindings[token], asView)
	}
}

// lookupResult is the outcome of one LookupSpec.
type lookupResult struct {
	Lookup LookupSpec
	Value  any
	Found  bool
	Err    error
}

func (r lookupResult) modifiers() di.Modifiers {
	return di.Modifiers{
		Optional: r.Lookup.Optional,
		Self:     r.Lookup.Self,
		SkipSelf: r.Lookup.SkipSelf,
		Host:     r.Lookup.Host,
	}
}

func (r lookupResult) mode() string {
	l := r.Lookup
	switch {
	case l.Self:
		return "self"
	case l.SkipSelf:
		return "skipSelf"
	case l.Host && l.HostOnly:
		return "host"
	default:
		return "default"
	}
}

func (r lookupResult) outcome() string {
	switch {
	case r.Err != nil && r.Lookup.Optional:
		return "nil (optional)"
	case errors.Is(r.Err, di.ErrNotFound):
		return "not found"
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case !r.Found:
		return "absent"
	default:
		return fmt.Sprint(r.Value)
	}
}

// String renders the result as "<scope> <token> [mode] => <outcome>".
func (r lookupResult) String() string {
	return fmt.Sprintf("%s %s [%s] => %s", r.Lookup.Scope, r.Lookup.Token, r.mode(), r.outcome())
}

// runLookups resolves every lookup in t against the built scopes.
func runLookups(t *Tree, scopes map[string]di.Injector) []lookupResult {
	results := make([]lookupResult, 0, len(t.Lookups))
	for _, l := range t.Lookups {
		r := lookupResult{Lookup: l}
		r.Value, r.Found, r.Err = scopes[l.Scope].Lookup(di.Name(l.Token), r.modifiers(), l.HostOnly)
		results = append(results, r)
	}
	return results
}

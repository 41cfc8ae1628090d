// Package hinject provides a hierarchical dependency injection resolver for Go.
//
// Injectors form chains from the most specific scope up to a terminal
// NullInjector. Lookups walk the chain, shaped by per-parameter modifiers
// (Optional, Self, SkipSelf, Host), and a Driver turns a component's declared
// parameters into constructor arguments.
//
// Wiring stays explicit: parameter lists and modifiers are registered in tables
// by start-up code, and application-wide services are bound to a root injector
// with an explicit call rather than an import side effect.
//
// Subpackages:
//   - di: the resolver, injector variants and instantiation driver
//   - cmd/hdi: a CLI that builds injector trees from YAML and runs lookups
//   - examples/heroes: a runnable walk-through of scopes and modifiers
package hinject

// Package di provides a small hierarchical dependency injection resolver.
//
// Providers are bound to tokens inside scoped injectors. Each injector holds
// exactly one parent, so every scope forms a chain that ends at a NullInjector:
//
//	NullInjector <- root <- module <- element
//
// A lookup starts at the most specific injector and walks toward the terminal
// until a binding is found. Per-parameter Modifiers change that walk:
//
//   - Self: resolve strictly at the starting scope; a miss is Absent, not an error.
//   - SkipSelf: ignore the starting scope and resolve at the parent only.
//   - Host: with hostOnly resolution, check the scope's view bindings and then
//     the immediate parent, never further.
//   - Optional: a failed resolution yields nil instead of aborting construction.
//
// The Driver maps a Component's declared parameters onto resolved instances and
// calls its constructor. Parameter lists and modifiers come from explicit tables
// (Signatures, Metadata) populated by start-up code; nothing is discovered
// through reflection and nothing is registered as an import side effect.
//
// The resolver is synchronous and unsynchronized. Register providers before
// lookups begin, and serialize access if injectors are shared across goroutines.
//
// Import
//
//	"github.com/sghaida/hinject/di"
package di

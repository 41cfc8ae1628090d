package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFound is matched (via errors.Is) by every NotFoundError.
	ErrNotFound = errors.New("di: no provider")

	// ErrConflictingModifiers is returned when Self and SkipSelf are both set.
	ErrConflictingModifiers = errors.New("di: self and skipSelf are mutually exclusive")

	// ErrNilToken is the panic value for a binding or lookup with a nil token.
	ErrNilToken = errors.New("di: nil token")

	// ErrNilComponent is returned when a nil component, or one without a
	// constructor, is instantiated.
	ErrNilComponent = errors.New("di: nil component")

	// ErrNilInjector is returned when a registration target injector is nil.
	ErrNilInjector = errors.New("di: nil injector")

	// ErrInvalidParamIndex is returned when metadata is attached to a negative
	// parameter index.
	ErrInvalidParamIndex = errors.New("di: invalid parameter index")
)

// NotFoundError is raised by the terminal injector when no scope in the chain
// binds Token.
type NotFoundError struct{ Token Token }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: di: no provider for "HeroService"
	return "di: no provider for " + strconv.Quote(tokenName(e.Token))
}

// Is reports whether target is ErrNotFound.
func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateMetadataError is returned when modifiers are attached twice to the
// same constructor parameter.
type DuplicateMetadataError struct {
	Component string
	Index     int
}

// Error implements the error interface.
func (e DuplicateMetadataError) Error() string {
	return "di: metadata already attached to " + strconv.Quote(e.Component) +
		" parameter " + strconv.Itoa(e.Index)
}

// InvalidTokenError is returned when a parameter carrying modifiers has no
// usable token: neither an override token nor a declared Token.
type InvalidTokenError struct {
	Component string
	Index     int
	GotType   string
}

// Error implements the error interface.
func (e InvalidTokenError) Error() string {
	return "di: " + strconv.Quote(e.Component) + " parameter " + strconv.Itoa(e.Index) +
		" is not a token (" + e.GotType + ")"
}

// ParamError reports which constructor parameter failed to resolve.
type ParamError struct {
	Component string
	Index     int
	Err       error
}

// Error implements the error interface.
func (e ParamError) Error() string {
	return "di: resolving " + strconv.Quote(e.Component) + " parameter " +
		strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

// Unwrap returns the underlying resolution error.
func (e ParamError) Unwrap() error { return e.Err }

// ConstructError wraps an error returned by a component constructor.
type ConstructError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e ConstructError) Error() string {
	return "di: constructing " + strconv.Quote(e.Component) + ": " + e.Err.Error()
}

// Unwrap returns the constructor error.
func (e ConstructError) Unwrap() error { return e.Err }

// WrongTypeError is returned by the typed helpers when a binding exists but
// holds a value of a different type.
type WrongTypeError struct {
	Token   Token
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: di: provider "HeroService" has wrong type (*main.Weapon)
	return "di: provider " + strconv.Quote(tokenName(e.Token)) + " has wrong type (" + e.GotType + ")"
}

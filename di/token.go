package di

import (
	"reflect"
	"strings"
)

// Token identifies a provider binding.
//
// Tokens are used as map keys, so two tokens match only when they are equal
// under Go's == (identity for pointers and types, value for Name).
type Token interface {
	TokenName() string
}

// Name is a string alias token.
//
// Example:
//
//	const HeroServiceToken di.Name = "HeroService"
type Name string

// TokenName implements Token.
func (n Name) TokenName() string { return string(n) }

type typeToken struct {
	t reflect.Type
}

func (v typeToken) TokenName() string {
	return strings.TrimLeft(v.t.String(), "*")
}

// TypeOf returns a token keyed by the static type T.
//
// TypeOf[*Hero]() and TypeOf[Hero]() are distinct tokens even though they
// share a TokenName.
func TypeOf[T any]() Token {
	return typeToken{reflect.TypeOf((*T)(nil)).Elem()}
}

func tokenName(t Token) string {
	if t == nil {
		return "<nil>"
	}
	return t.TokenName()
}

func isToken(v any) (Token, bool) {
	t, ok := v.(Token)
	return t, ok && t != nil
}

package di

// Modifiers alter how a single constructor parameter is resolved.
//
// The zero value is the default upward-walking lookup.
type Modifiers struct {
	// Optional substitutes nil when resolution fails.
	Optional bool
	// Self resolves strictly at the starting injector.
	Self bool
	// SkipSelf resolves at the parent of the starting injector only.
	SkipSelf bool
	// Host restricts hostOnly resolution to the view bindings of the
	// starting injector and its immediate parent.
	Host bool
	// Token, when set, overrides the parameter's declared token.
	Token Token
}

// Validate rejects modifier combinations with no defined meaning.
func (m Modifiers) Validate() error {
	if m.Self && m.SkipSelf {
		return ErrConflictingModifiers
	}
	return nil
}

func (m Modifiers) mode() string {
	switch {
	case m.Self:
		return "self"
	case m.SkipSelf:
		return "skipSelf"
	case m.Host:
		return "host"
	default:
		return "default"
	}
}

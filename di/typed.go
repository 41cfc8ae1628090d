package di

// LookupAs resolves token and asserts the result to T.
//
// found is false only for an Absent (Self-scoped) result. A binding whose
// instance is nil yields the zero T.
func LookupAs[T any](inj Injector, token Token, mods Modifiers, hostOnly bool) (T, bool, error) {
	var zero T
	raw, found, err := orNull(inj).Lookup(token, mods, hostOnly)
	if err != nil || !found {
		return zero, false, err
	}
	if raw == nil {
		return zero, true, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, true, WrongTypeError{Token: token, GotType: typeName(raw)}
	}
	return v, true, nil
}

// TryLookupAs is LookupAs with default modifiers.
//
// It returns:
//   - NotFoundError if no scope binds token
//   - WrongTypeError if the binding is not a T
func TryLookupAs[T any](inj Injector, token Token) (T, error) {
	v, _, err := LookupAs[T](inj, token, Modifiers{}, false)
	return v, err
}

// MustLookupAs is TryLookupAs that panics on error.
func MustLookupAs[T any](inj Injector, token Token) T {
	v, err := TryLookupAs[T](inj, token)
	if err != nil {
		panic(err)
	}
	return v
}

// InstantiateAs runs d.Instantiate and asserts the constructed value to T.
func InstantiateAs[T any](d *Driver, c *Component, inj Injector, manualDeps []any, hostOnly bool) (T, error) {
	var zero T
	raw, err := d.Instantiate(c, inj, manualDeps, hostOnly)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeError{Token: c, GotType: typeName(raw)}
	}
	return v, nil
}

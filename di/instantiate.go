package di

import (
	"github.com/rs/zerolog"
)

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithDriverLogger sets the logger used to report parameter resolution.
func WithDriverLogger(l zerolog.Logger) DriverOption {
	return func(d *Driver) { d.log = l }
}

// Driver constructs components by resolving their declared parameters
// against an injector chain.
type Driver struct {
	sigs SignatureProvider
	meta MetadataStore
	log  zerolog.Logger
}

// NewDriver creates a Driver reading parameter lists from sigs and modifiers
// from meta. Nil collaborators behave as empty tables.
func NewDriver(sigs SignatureProvider, meta MetadataStore, opts ...DriverOption) *Driver {
	if sigs == nil {
		sigs = NewSignatures()
	}
	if meta == nil {
		meta = NewMetadata()
	}
	d := &Driver{sigs: sigs, meta: meta, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Instantiate resolves c's parameters against inj and calls c.New with the
// results in parameter order.
//
// manualDeps supplies per-index overrides for parameters without modifiers:
// a non-Token value is passed through as-is, a Token is looked up in its
// place. When c has no declared signature, manualDeps is the parameter list.
//
// Any unrecovered resolution failure aborts construction; c.New is not called.
func (d *Driver) Instantiate(c *Component, inj Injector, manualDeps []any, hostOnly bool) (any, error) {
	if c == nil || c.New == nil {
		return nil, ErrNilComponent
	}
	args, err := d.ResolveArgs(c, inj, manualDeps, hostOnly)
	if err != nil {
		return nil, err
	}
	v, err := c.New(args)
	if err != nil {
		return nil, ConstructError{Component: c.Name, Err: err}
	}
	d.log.Debug().Str("component", c.Name).Int("args", len(args)).Msg("instantiated")
	return v, nil
}

// ResolveArgs resolves c's parameters without constructing it.
// See Instantiate for how manualDeps and modifiers apply.
func (d *Driver) ResolveArgs(c *Component, inj Injector, manualDeps []any, hostOnly bool) ([]any, error) {
	if c == nil {
		return nil, ErrNilComponent
	}
	inj = orNull(inj)

	params := d.sigs.Signature(c)
	if len(params) == 0 {
		params = manualDeps
	}

	args := make([]any, 0, len(params))
	for i, param := range params {
		v, err := d.resolveParam(c, inj, i, param, manualDeps, hostOnly)
		if err != nil {
			return nil, ParamError{Component: c.Name, Index: i, Err: err}
		}
		args = append(args, v)
	}
	return args, nil
}

func (d *Driver) resolveParam(c *Component, inj Injector, i int, param any, manualDeps []any, hostOnly bool) (any, error) {
	if mods, ok := d.meta.Modifiers(c, i); ok {
		return d.resolveWithModifiers(c, inj, i, param, mods, hostOnly)
	}

	var manual any
	if i < len(manualDeps) {
		manual = manualDeps[i]
	}
	if manual != nil {
		if _, isTok := isToken(manual); !isTok {
			d.trace(c, i, nil, "manual")
			return manual, nil
		}
		param = manual
	}

	token, ok := isToken(param)
	if !ok {
		return nil, InvalidTokenError{Component: c.Name, Index: i, GotType: typeName(param)}
	}
	v, _, err := inj.Lookup(token, Modifiers{}, false)
	if err != nil {
		return nil, err
	}
	d.trace(c, i, token, "resolved")
	return v, nil
}

func (d *Driver) resolveWithModifiers(c *Component, inj Injector, i int, param any, mods Modifiers, hostOnly bool) (any, error) {
	if err := mods.Validate(); err != nil {
		return nil, err
	}
	token := mods.Token
	if token == nil {
		t, ok := isToken(param)
		if !ok {
			return nil, InvalidTokenError{Component: c.Name, Index: i, GotType: typeName(param)}
		}
		token = t
	}

	v, found, err := inj.Lookup(token, mods, hostOnly)
	switch {
	case err != nil && mods.Optional:
		d.trace(c, i, token, "optional-nil")
		return nil, nil
	case err != nil:
		return nil, err
	case !found:
		// Absent from a Self lookup: the slot stays nil whether or not it is optional.
		d.trace(c, i, token, "self-absent")
		return nil, nil
	}
	d.trace(c, i, token, "resolved")
	return v, nil
}

func (d *Driver) trace(c *Component, i int, token Token, outcome string) {
	e := d.log.Debug()
	if e == nil {
		return
	}
	if token != nil {
		e = e.Str("token", token.TokenName())
	}
	e.Str("component", c.Name).Int("index", i).Str("outcome", outcome).Msg("parameter")
}

// RegisterInjectable instantiates c against root and binds the instance under
// c in root's primary partition. Call it from start-up code for each
// application-wide service.
func (d *Driver) RegisterInjectable(root *Node, c *Component) error {
	if root == nil {
		return ErrNilInjector
	}
	v, err := d.Instantiate(c, root, nil, false)
	if err != nil {
		return err
	}
	root.AddProvider(c, v, false)
	return nil
}

package di

// SignatureProvider reports a component's constructor parameters in order,
// one entry per parameter. Entries are normally Tokens.
type SignatureProvider interface {
	Signature(c *Component) []any
}

// MetadataStore reports the modifiers attached to a constructor parameter.
type MetadataStore interface {
	Modifiers(c *Component, index int) (Modifiers, bool)
}

// Signatures is an explicit registration table implementing SignatureProvider.
type Signatures struct {
	items map[*Component][]any
}

var _ SignatureProvider = (*Signatures)(nil)

func NewSignatures() *Signatures {
	return &Signatures{items: map[*Component][]any{}}
}

// Declare records c's parameters and returns the table for chaining.
// Declaring the same component again replaces its parameter list.
func (s *Signatures) Declare(c *Component, params ...any) *Signatures {
	if c == nil {
		panic(ErrNilComponent)
	}
	if s.items == nil {
		s.items = map[*Component][]any{}
	}
	s.items[c] = append([]any(nil), params...)
	return s
}

// Signature implements SignatureProvider. Unknown components have no
// parameters.
func (s *Signatures) Signature(c *Component) []any {
	if s == nil {
		return nil
	}
	return s.items[c]
}

type paramSite struct {
	c     *Component
	index int
}

// Metadata is a write-once table of per-parameter modifiers implementing
// MetadataStore.
type Metadata struct {
	items map[paramSite]Modifiers
}

var _ MetadataStore = (*Metadata)(nil)

func NewMetadata() *Metadata {
	return &Metadata{items: map[paramSite]Modifiers{}}
}

// Attach records mods for parameter index of c.
//
// It fails if:
//   - c is nil (ErrNilComponent)
//   - index is negative (ErrInvalidParamIndex)
//   - mods sets both Self and SkipSelf (ErrConflictingModifiers)
//   - the parameter already has modifiers (DuplicateMetadataError)
func (m *Metadata) Attach(c *Component, index int, mods Modifiers) error {
	switch {
	case c == nil:
		return ErrNilComponent
	case index < 0:
		return ErrInvalidParamIndex
	}
	if err := mods.Validate(); err != nil {
		return err
	}
	if m.items == nil {
		m.items = map[paramSite]Modifiers{}
	}
	site := paramSite{c, index}
	if _, exists := m.items[site]; exists {
		return DuplicateMetadataError{Component: c.Name, Index: index}
	}
	m.items[site] = mods
	return nil
}

// MustAttach is Attach that panics on error. It returns the table for chaining.
func (m *Metadata) MustAttach(c *Component, index int, mods Modifiers) *Metadata {
	if err := m.Attach(c, index, mods); err != nil {
		panic(err)
	}
	return m
}

// Modifiers implements MetadataStore.
func (m *Metadata) Modifiers(c *Component, index int) (Modifiers, bool) {
	if m == nil {
		return Modifiers{}, false
	}
	mods, ok := m.items[paramSite{c, index}]
	return mods, ok
}
